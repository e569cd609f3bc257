package store

import (
	"context"
	"errors"

	"github.com/Shivambansal96/salon-Billing/models"
)

// SeedDefaults writes the staff roster and membership catalog into the
// config namespace when they are not present yet. Existing documents are
// left untouched.
func SeedDefaults(ctx context.Context, docs Documents) error {
	if _, err := docs.Get(ctx, KeyStaff); errors.Is(err, ErrNotFound) {
		if err := SetJSON(ctx, docs, KeyStaff, models.DefaultStaff()); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if _, err := docs.Get(ctx, KeyMemberships); errors.Is(err, ErrNotFound) {
		if err := SetJSON(ctx, docs, KeyMemberships, models.DefaultMemberships()); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	return nil
}
