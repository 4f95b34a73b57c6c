package archive

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// Schema: see schema.sql next to this file.

func Save(ctx context.Context, tx pgx.Tx, rec *Record) error {
	stmt := `insert into blocks
				(block_index, hash, prev_hash, tx_count, block_timestamp, accepted_at)
				values ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, stmt,
		rec.Index,
		rec.Hash,
		rec.PrevHash,
		rec.TxCount,
		rec.Timestamp,
		rec.AcceptedAt,
	)
	return err
}

func Recent(ctx context.Context, tx pgx.Tx, limit int) ([]Record, error) {
	stmt := `select block_index, hash, prev_hash, tx_count, block_timestamp, accepted_at
				from blocks
				order by block_index desc limit $1`
	rows, err := tx.Query(ctx, stmt, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		err := rows.Scan(&r.Index, &r.Hash, &r.PrevHash, &r.TxCount, &r.Timestamp, &r.AcceptedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func GetByIndex(ctx context.Context, tx pgx.Tx, index uint64) (*Record, error) {
	stmt := `select block_index, hash, prev_hash, tx_count, block_timestamp, accepted_at
				from blocks where block_index = $1 limit 1`

	var r Record
	err := tx.QueryRow(ctx, stmt, index).Scan(
		&r.Index, &r.Hash, &r.PrevHash, &r.TxCount, &r.Timestamp, &r.AcceptedAt,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}
