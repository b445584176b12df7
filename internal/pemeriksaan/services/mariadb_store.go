package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/google/uuid"
)

// MariaDBStore menyimpan data pemeriksaan di MariaDB/MySQL.
type MariaDBStore struct {
	DB *sql.DB
}

func NewMariaDBStore(db *sql.DB) *MariaDBStore {
	return &MariaDBStore{DB: db}
}

const kolomPemeriksaan = `no, kode_penjamin, tgl_pemeriksaan, nama_pasien, jenis_kelamin, kelas,
	jenis_dokter, dokter_pengirim, jumlah_film, pengulangan_foto, penggunaan_faktor_eksposi,
	radiografer, jasa_radiografer, jasa_bahaya_radiasi, jenis_pemeriksaan, tarif_pemeriksaan, jasa_dokter`

func (s *MariaDBStore) Migrate(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, schemaMariaDB)
	return err
}

// Insert memberi ID UUID baru lalu menyimpan record.
func (s *MariaDBStore) Insert(ctx context.Context, p models.Pemeriksaan) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO radiology_examinations (id, ` + kolomPemeriksaan + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	args := append([]interface{}{id}, argumenPemeriksaan(p)...)
	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return "", err
	}
	return id, nil
}

func (s *MariaDBStore) Update(ctx context.Context, id string, p models.Pemeriksaan) error {
	query := `UPDATE radiology_examinations SET
		no = ?, kode_penjamin = ?, tgl_pemeriksaan = ?, nama_pasien = ?, jenis_kelamin = ?, kelas = ?,
		jenis_dokter = ?, dokter_pengirim = ?, jumlah_film = ?, pengulangan_foto = ?, penggunaan_faktor_eksposi = ?,
		radiografer = ?, jasa_radiografer = ?, jasa_bahaya_radiasi = ?, jenis_pemeriksaan = ?, tarif_pemeriksaan = ?, jasa_dokter = ?
		WHERE id = ?`

	args := append(argumenPemeriksaan(p), id)
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	// MySQL melaporkan 0 baris untuk update tanpa perubahan nilai, jadi cek keberadaan terpisah.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return s.pastikanAda(ctx, id)
	}
	return nil
}

func (s *MariaDBStore) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM radiology_examinations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MariaDBStore) ListByDateRange(ctx context.Context, start, end string, descending bool) ([]models.Pemeriksaan, error) {
	query := `SELECT id, ` + kolomPemeriksaan + `
		FROM radiology_examinations
		WHERE tgl_pemeriksaan >= ? AND tgl_pemeriksaan <= ?` + urutanQuery(descending)

	rows, err := s.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.Pemeriksaan{}
	for rows.Next() {
		var p models.Pemeriksaan
		var no, jumlahFilm, faktorEksposi sql.NullString
		var tgl time.Time

		if err := rows.Scan(
			&p.ID, &no, &p.KodePenjamin, &tgl, &p.NamaPasien, &p.JenisKelamin, &p.Kelas,
			&p.JenisDokter, &p.DokterPengirim, &jumlahFilm, &p.PengulanganFoto, &faktorEksposi,
			&p.Radiografer, &p.JasaRadiografer, &p.JasaBahayaRadiasi, &p.JenisPemeriksaan, &p.TarifPemeriksaan, &p.JasaDokter,
		); err != nil {
			return nil, fmt.Errorf("scan pemeriksaan: %w", err)
		}

		p.TglPemeriksaan = tgl.Format(models.LayoutTanggal)
		if no.Valid {
			p.No = &no.String
		}
		if jumlahFilm.Valid {
			p.JumlahFilm = &jumlahFilm.String
		}
		if faktorEksposi.Valid {
			p.PenggunaanFaktorEksposi = &faktorEksposi.String
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *MariaDBStore) pastikanAda(ctx context.Context, id string) error {
	var found string
	err := s.DB.QueryRowContext(ctx, `SELECT id FROM radiology_examinations WHERE id = ?`, id).Scan(&found)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func argumenPemeriksaan(p models.Pemeriksaan) []interface{} {
	return []interface{}{
		p.No, p.KodePenjamin, p.TglPemeriksaan, p.NamaPasien, p.JenisKelamin, p.Kelas,
		p.JenisDokter, p.DokterPengirim, p.JumlahFilm, p.PengulanganFoto, p.PenggunaanFaktorEksposi,
		p.Radiografer, p.JasaRadiografer, p.JasaBahayaRadiasi, p.JenisPemeriksaan, p.TarifPemeriksaan, p.JasaDokter,
	}
}
