package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"ristcon.api/repositories"
)

// ServiceError is an error kind. Concrete errors unwrap to exactly one kind.
type ServiceError string

func (e ServiceError) Error() string { return string(e) }

const (
	ErrNotFound           ServiceError = "not found"
	ErrPolicyViolation    ServiceError = "policy violation"
	ErrValidationFailed   ServiceError = "validation failed"
	ErrIntegrityViolation ServiceError = "integrity violation"
)

type kindError struct {
	kind ServiceError
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newKindError(kind ServiceError, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

var (
	ErrEditionNotFound       = newKindError(ErrNotFound, "edition not found")
	ErrNoActiveEdition       = newKindError(ErrNotFound, "no active edition")
	ErrRecordNotFound        = newKindError(ErrNotFound, "record not found")
	ErrCommitteeTypeNotFound = newKindError(ErrValidationFailed, "committee type does not exist")

	ErrEditionYearTaken = newKindError(ErrValidationFailed, "an edition with this year or slug already exists")

	ErrPublishNotDraft = newKindError(ErrPolicyViolation, "only draft editions can be published")
	ErrArchiveActive   = newKindError(ErrPolicyViolation, "cannot archive active edition")
	ErrArchiveDraft    = newKindError(ErrPolicyViolation, "draft editions cannot be archived")
	ErrCancelActive    = newKindError(ErrPolicyViolation, "cannot cancel active edition")
	ErrCancelFinished  = newKindError(ErrPolicyViolation, "archived or cancelled editions cannot be cancelled")
	ErrDeleteProtected = newKindError(ErrPolicyViolation, "active and published editions cannot be deleted")
	ErrExtendNotLater  = newKindError(ErrValidationFailed, "extended date must be later than the current date")
)

// ValidationError lists failed fields keyed by their JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + e.Fields[k]
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// notFoundOr turns a repository miss into target and passes any other error through.
func notFoundOr(err, target error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return target
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return err
}
