package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// Generic CRUD primitives shared by every collection. Per-entity behavior
// (filters, ordering, derived fields) stays in the repository methods; these
// only know that every table has an integer "id" primary key and the "t" alias.

func byID[T any](ctx context.Context, dbi pg.DBI, id int) (*T, error) {
	rec := new(T)
	err := dbi.ModelContext(ctx, rec).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get %T by id: %w", rec, err)
	}

	return rec, nil
}

func insert[T any](ctx context.Context, dbi pg.DBI, rec *T) error {
	_, err := dbi.ModelContext(ctx, rec).Returning("*").Insert()
	if err != nil {
		return fmt.Errorf("failed to insert %T: %w", rec, err)
	}
	return nil
}

func update[T any](ctx context.Context, dbi pg.DBI, rec *T) error {
	res, err := dbi.ModelContext(ctx, rec).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update %T: %w", rec, err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("update %T: no matching row", rec)
	}
	return nil
}

func deleteByID[T any](ctx context.Context, dbi pg.DBI, id int) error {
	rec := new(T)
	_, err := dbi.ModelContext(ctx, rec).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete %T: %w", rec, err)
	}
	return nil
}

func list[T any](ctx context.Context, dbi pg.DBI, order string) ([]T, error) {
	var items []T
	err := dbi.ModelContext(ctx, &items).
		OrderExpr(order).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query %T list: %w", items, err)
	}
	return items, nil
}
