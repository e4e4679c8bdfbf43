// SPDX-License-Identifier: Apache-2.0

package store

const (
	saveSessionEntry = `
		INSERT INTO session_record (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	loadSessionEntry = `
		SELECT value
		FROM session_record
		WHERE key = $1;`

	deleteSessionEntry = `
		DELETE FROM session_record
		WHERE key = $1;`
)
