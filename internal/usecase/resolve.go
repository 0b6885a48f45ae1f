package usecase

import (
	"context"
	"fmt"
	"strings"

	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
	"github.com/riskibarqy/league-portal/internal/platform/slug"
)

type lookupFunc[T any] func(ctx context.Context, key string) (T, bool, error)

// resolveRef loads a record by uuid or, failing the uuid shape, by slug.
func resolveRef[T any](ctx context.Context, kind, ref string, byID, bySlug lookupFunc[T]) (T, error) {
	var zero T
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return zero, fmt.Errorf("%w: %s reference is required", ErrInvalidInput, kind)
	}

	lookup := bySlug
	if idgen.IsUUID(ref) {
		lookup = byID
	}
	item, exists, err := lookup(ctx, ref)
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", kind, err)
	}
	if !exists {
		return zero, fmt.Errorf("%w: %s=%s", ErrNotFound, kind, ref)
	}
	return item, nil
}

// mustExist loads a record by id and reports a missing one as a field error.
func mustExist[T any](ctx context.Context, kind, field, id string, byID lookupFunc[T]) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, invalidField(field, "is required")
	}
	item, exists, err := byID(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", kind, err)
	}
	if !exists {
		return zero, invalidField(field, kind+" does not exist")
	}
	return item, nil
}

func loadByID[T any](ctx context.Context, kind, id string, byID lookupFunc[T]) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, fmt.Errorf("%w: %s id is required", ErrInvalidInput, kind)
	}
	item, exists, err := byID(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", kind, err)
	}
	if !exists {
		return zero, fmt.Errorf("%w: %s=%s", ErrNotFound, kind, id)
	}
	return item, nil
}

// pickSlug returns the requested slug or derives one from the english name. A name
// without latin letters falls back to kind plus the id prefix.
func pickSlug(requested, nameEN, kind, id string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested != "" {
		if !slug.Valid(requested) {
			return "", invalidField("slug", "must be lowercase letters, digits and single dashes")
		}
		return requested, nil
	}
	if s := slug.Make(nameEN); s != "" {
		return s, nil
	}
	return kind + "-" + strings.SplitN(id, "-", 2)[0], nil
}

// ensureSlugFree rejects a slug that belongs to a different record.
func ensureSlugFree[T any](ctx context.Context, kind, value, selfID string, bySlug lookupFunc[T], idOf func(T) string) error {
	existing, exists, err := bySlug(ctx, value)
	if err != nil {
		return fmt.Errorf("get %s by slug: %w", kind, err)
	}
	if exists && idOf(existing) != selfID {
		return fmt.Errorf("%w: %s slug %q is taken", ErrConflict, kind, value)
	}
	return nil
}

// domainInvalid turns an entity validation failure into ErrInvalidInput.
func domainInvalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
