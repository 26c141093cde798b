package errCode

// ErrCode 错误码
type ErrCode int

const (
	OK ErrCode = iota
	EMPTY_VALUE
	INVALID_VALUE
	IO_ERROR
	PARSE_ERROR
)

func (c ErrCode) String() string {
	switch c {
	case OK:
		return "OK"
	case EMPTY_VALUE:
		return "EMPTY_VALUE"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case IO_ERROR:
		return "IO_ERROR"
	case PARSE_ERROR:
		return "PARSE_ERROR"
	default:
		return "UNKNOWN"
	}
}
