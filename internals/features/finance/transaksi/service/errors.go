package service

import "errors"

// Taksonomi error reconciliation core. Controller yang memetakan ke HTTP status.
var (
	ErrNotFound         = errors.New("data tidak ditemukan")
	ErrValidation       = errors.New("validasi gagal")
	ErrForbidden        = errors.New("akses ditolak")
	ErrInvalidState     = errors.New("status tidak valid untuk operasi ini")
	ErrSignatureInvalid = errors.New("signature tidak valid")
)
