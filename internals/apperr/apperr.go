// Package apperr mendefinisikan taksonomi kegagalan yang dipakai semua layer:
// validasi, record tidak ditemukan, store bermasalah, provisioning setengah
// jadi, dan akses ditolak. Semua layer mengembalikan error bertipe ini ke
// atas, tidak ada yang log-and-swallow.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindStorage
	KindPartialProvision
	KindAuthorization
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	case KindPartialProvision:
		return "partial_provision"
	case KindAuthorization:
		return "authorization"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
	// Fields berisi detail per-field untuk error validasi (opsional)
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func ValidationFields(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Msg: msg, Fields: fields}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Storage(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Msg: msg, Err: err}
}

func PartialProvision(msg string, err error) *Error {
	return &Error{Kind: KindPartialProvision, Msg: msg, Err: err}
}

func Authorization(msg string) *Error {
	return &Error{Kind: KindAuthorization, Msg: msg}
}

// Is memudahkan pengecekan jenis error tanpa type assertion manual.
func Is(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}
