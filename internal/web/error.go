package web

import "github.com/swaggest/jsonrpc"

// Application error codes surfaced through the JSON-RPC envelope.
const (
	codeInvalidInput    jsonrpc.ErrorCode = 1
	codeSessionNotFound jsonrpc.ErrorCode = 2
	codeEmptyHeap       jsonrpc.ErrorCode = 3
	codeListTooLarge    jsonrpc.ErrorCode = 4
	codeSessionLimit    jsonrpc.ErrorCode = 5
)

func CodeError(code jsonrpc.ErrorCode, err error) error {
	return resError{error: err, code: code}
}

type resError struct {
	error
	code jsonrpc.ErrorCode
}

func (r resError) AppErrCode() jsonrpc.ErrorCode {
	return r.code
}
