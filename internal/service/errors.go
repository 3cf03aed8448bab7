package service

import "errors"

// 服务层通用错误
var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrSessionExpired     = errors.New("会话已过期，请重新登录")
	ErrTooManyFiles       = errors.New("too many files")
	ErrNotFound           = errors.New("记录不存在")
)
