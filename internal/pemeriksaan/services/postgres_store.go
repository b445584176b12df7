package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore menyimpan data pemeriksaan di Postgres lewat pgx.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{Pool: pool}
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, schemaPostgres)
	return err
}

func (s *PostgresStore) Insert(ctx context.Context, p models.Pemeriksaan) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO radiology_examinations (id, ` + kolomPemeriksaan + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	args := append([]any{id}, argumenPemeriksaan(p)...)
	if _, err := s.Pool.Exec(ctx, query, args...); err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) Update(ctx context.Context, id string, p models.Pemeriksaan) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	query := `UPDATE radiology_examinations SET
		no = $1, kode_penjamin = $2, tgl_pemeriksaan = $3, nama_pasien = $4, jenis_kelamin = $5, kelas = $6,
		jenis_dokter = $7, dokter_pengirim = $8, jumlah_film = $9, pengulangan_foto = $10, penggunaan_faktor_eksposi = $11,
		radiografer = $12, jasa_radiografer = $13, jasa_bahaya_radiasi = $14, jenis_pemeriksaan = $15, tarif_pemeriksaan = $16, jasa_dokter = $17
		WHERE id = $18`

	tag, err := s.Pool.Exec(ctx, query, append(argumenPemeriksaan(p), id)...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	tag, err := s.Pool.Exec(ctx, `DELETE FROM radiology_examinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListByDateRange(ctx context.Context, start, end string, descending bool) ([]models.Pemeriksaan, error) {
	query := `SELECT id::text, ` + kolomPemeriksaan + `
		FROM radiology_examinations
		WHERE tgl_pemeriksaan >= $1::date AND tgl_pemeriksaan <= $2::date` + urutanQuery(descending)

	rows, err := s.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.Pemeriksaan{}
	for rows.Next() {
		var p models.Pemeriksaan
		var tgl time.Time
		if err := rows.Scan(
			&p.ID, &p.No, &p.KodePenjamin, &tgl, &p.NamaPasien, &p.JenisKelamin, &p.Kelas,
			&p.JenisDokter, &p.DokterPengirim, &p.JumlahFilm, &p.PengulanganFoto, &p.PenggunaanFaktorEksposi,
			&p.Radiografer, &p.JasaRadiografer, &p.JasaBahayaRadiasi, &p.JenisPemeriksaan, &p.TarifPemeriksaan, &p.JasaDokter,
		); err != nil {
			return nil, fmt.Errorf("scan pemeriksaan: %w", err)
		}
		p.TglPemeriksaan = tgl.Format(models.LayoutTanggal)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	return result, nil
}
