package errors

import "github.com/dikiindrasaputra/omahjajanwatir/constant"

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// TypeOf extracts the taxonomy type from any error, falling back to
// ErrInternal for errors that did not pass through this package.
func TypeOf(err error) constant.ErrorType {
	if err == nil {
		return constant.Successful
	}
	if ce, ok := err.(CustomError); ok {
		return ce.Type()
	}
	return constant.ErrInternal
}
