package filter

import "estate_portal_v1/internal/model"

// View 带记忆的过滤视图
// 源集合或过滤状态变化时同步重算，两者都没变时直接复用上次结果
type View struct {
	source  []model.Compound
	version uint64 // 源集合版本号，SetSource 时自增
	state   State

	cached        []model.Compound
	cachedVersion uint64
	cachedState   State
	valid         bool
}

// NewView 创建过滤视图
func NewView(source []model.Compound) *View {
	return &View{source: source, version: 1}
}

// SetSource 替换源集合 (重新拉取后调用)
func (v *View) SetSource(source []model.Compound) {
	v.source = source
	v.version++
}

// SetState 更新过滤状态
func (v *View) SetState(s State) {
	v.state = s
}

// Results 返回当前过滤结果
// 依赖元组 (版本号, 状态) 未变化时返回缓存，避免重复扫描
func (v *View) Results() []model.Compound {
	if v.valid && v.cachedVersion == v.version && v.cachedState == v.state {
		return v.cached
	}

	v.cached = Apply(v.source, v.state)
	v.cachedVersion = v.version
	v.cachedState = v.state
	v.valid = true
	return v.cached
}
