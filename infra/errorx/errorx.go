package errorx

import (
	"errors"
	"fmt"

	"histopt/infra/errorx/errCode"
)

// Error 带错误码的错误
type Error struct {
	Code  errCode.ErrCode
	Msg   string
	cause error
}

func New(code errCode.ErrCode, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Wrap 保留底层错误, 可用 errors.Is / errors.As 追溯
func Wrap(code errCode.ErrCode, err error, msg string) *Error {
	return &Error{Code: code, Msg: msg, cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Msg, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is 按错误码比较
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Msg == "" || t.Msg == e.Msg)
}

// CodeOf 取错误链上第一个错误码, 非 errorx 错误返回 INVALID_VALUE
func CodeOf(err error) errCode.ErrCode {
	if err == nil {
		return errCode.OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return errCode.INVALID_VALUE
}
