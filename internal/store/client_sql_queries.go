// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	localStorageTable  = "local_storage"
	localStorageKey    = "storage_key"
	localStorageValue  = "storage_value"
	localStorageUpdate = "updated_at"
)

func selectValueQuery(key string) (string, []any, error) {
	return sq.Select(localStorageValue).
		From(localStorageTable).
		Where(sq.Eq{localStorageKey: key}).
		ToSql()
}

func upsertValueQuery(key, value string, now time.Time) (string, []any, error) {
	return sq.Insert(localStorageTable).
		Columns(localStorageKey, localStorageValue, localStorageUpdate).
		Values(key, value, now).
		Suffix("ON CONFLICT(" + localStorageKey + ") DO UPDATE SET " +
			localStorageValue + " = excluded." + localStorageValue + ", " +
			localStorageUpdate + " = excluded." + localStorageUpdate).
		ToSql()
}

func deleteValueQuery(key string) (string, []any, error) {
	return sq.Delete(localStorageTable).
		Where(sq.Eq{localStorageKey: key}).
		ToSql()
}
