// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	posterColumns = `local_id, server_id, lat, lng, removed, pending_sync`

	insertLocalPoster = `
		INSERT INTO posters (server_id, lat, lng, removed, pending_sync)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (server_id) DO UPDATE SET
			lat = excluded.lat,
			lng = excluded.lng,
			removed = excluded.removed,
			pending_sync = excluded.pending_sync
		RETURNING local_id;`

	getLocalPoster = `
		SELECT ` + posterColumns + `
		FROM posters
		WHERE local_id = ?;`

	listActiveLocalPosters = `
		SELECT ` + posterColumns + `
		FROM posters
		WHERE removed = 0
		ORDER BY local_id;`

	listPendingLocalPosters = `
		SELECT ` + posterColumns + `
		FROM posters
		WHERE pending_sync = 1
		ORDER BY local_id;`

	getLocalPosterServerID = `
		SELECT server_id, removed
		FROM posters
		WHERE local_id = ?;`

	findLocalIDByServerID = `
		SELECT local_id
		FROM posters
		WHERE server_id = ?;`

	markLocalPosterSynced = `
		UPDATE posters
		SET server_id = ?, pending_sync = 0
		WHERE local_id = ?;`

	// collapse a duplicate placement into the row that already owns the id
	mergeIntoLocalPoster = `
		UPDATE posters
		SET removed = MAX(removed, ?), pending_sync = 0
		WHERE local_id = ?;`

	findLocalPosterByServerID = `
		SELECT lat, lng
		FROM posters
		WHERE server_id = ?;`

	markLocalPosterRemoved = `
		UPDATE posters
		SET pending_sync = CASE WHEN removed = 1 THEN pending_sync ELSE 1 END,
			removed = 1
		WHERE server_id = ?;`

	deleteLocalPosterByServerID = `DELETE FROM posters WHERE server_id = ?;`

	deleteLocalPosterByLocalID = `DELETE FROM posters WHERE local_id = ?;`

	deleteConfirmedTombstones = `DELETE FROM posters WHERE removed = 1 AND pending_sync = 0;`

	deleteAllLocalPosters = `DELETE FROM posters;`

	// a pending local edit wins until it has been flushed; a confirmed
	// tombstone stays removed
	upsertRemotePoster = `
		INSERT INTO posters (server_id, lat, lng, removed, pending_sync)
		VALUES (?, ?, ?, 0, 0)
		ON CONFLICT (server_id) DO UPDATE SET
			lat = excluded.lat,
			lng = excluded.lng,
			removed = 0
		WHERE posters.pending_sync = 0 AND posters.removed = 0;`

	// a remote removal also settles a pending local removal of the same poster
	applyRemoteRemoval = `
		UPDATE posters
		SET removed = 1, pending_sync = 0
		WHERE server_id = ? AND (pending_sync = 0 OR removed = 1);`

	checkpointKey = "checkpoint"

	getCheckpoint = `SELECT value FROM sync_state WHERE key = ?;`

	advanceCheckpoint = `
		INSERT INTO sync_state (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = MAX(value, excluded.value);`

	resetCheckpoint = `
		INSERT INTO sync_state (key, value) VALUES (?, 0)
		ON CONFLICT (key) DO UPDATE SET value = 0;`

	saveSession = `
		INSERT INTO session (id, auth_key, user_id, party_id, party_name)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			auth_key = excluded.auth_key,
			user_id = excluded.user_id,
			party_id = excluded.party_id,
			party_name = excluded.party_name;`

	getSession = `SELECT auth_key, user_id, party_id, party_name FROM session WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)
