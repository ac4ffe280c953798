package logic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCaseNotFound       = errors.New("案例不存在")
	ErrLeadNotFound       = errors.New("潜客不存在")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
)

// ValidationError 参数校验错误,Fields 为缺失或非法的字段列表
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
	}
	return e.Message
}

func newValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}
