package services

const schemaMariaDB = `
CREATE TABLE IF NOT EXISTS radiology_examinations (
	id                        CHAR(36)     NOT NULL PRIMARY KEY,
	no                        VARCHAR(50)  NULL,
	kode_penjamin             VARCHAR(20)  NOT NULL,
	tgl_pemeriksaan           DATE         NOT NULL,
	nama_pasien               VARCHAR(255) NOT NULL,
	jenis_kelamin             VARCHAR(20)  NOT NULL,
	kelas                     VARCHAR(50)  NOT NULL,
	jenis_dokter              VARCHAR(20)  NOT NULL,
	dokter_pengirim           VARCHAR(100) NOT NULL,
	jumlah_film               VARCHAR(50)  NULL,
	pengulangan_foto          VARCHAR(10)  NOT NULL,
	penggunaan_faktor_eksposi VARCHAR(255) NULL,
	radiografer               VARCHAR(50)  NOT NULL,
	jasa_radiografer          INT          NOT NULL,
	jasa_bahaya_radiasi       INT          NOT NULL,
	jenis_pemeriksaan         VARCHAR(50)  NOT NULL,
	tarif_pemeriksaan         INT          NOT NULL,
	jasa_dokter               INT          NOT NULL,
	created_at                TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
	INDEX idx_tgl_pemeriksaan (tgl_pemeriksaan)
)`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS radiology_examinations (
	id                        UUID         PRIMARY KEY,
	no                        TEXT         NULL,
	kode_penjamin             TEXT         NOT NULL,
	tgl_pemeriksaan           DATE         NOT NULL,
	nama_pasien               TEXT         NOT NULL,
	jenis_kelamin             TEXT         NOT NULL,
	kelas                     TEXT         NOT NULL,
	jenis_dokter              TEXT         NOT NULL,
	dokter_pengirim           TEXT         NOT NULL,
	jumlah_film               TEXT         NULL,
	pengulangan_foto          TEXT         NOT NULL,
	penggunaan_faktor_eksposi TEXT         NULL,
	radiografer               TEXT         NOT NULL,
	jasa_radiografer          INTEGER      NOT NULL,
	jasa_bahaya_radiasi       INTEGER      NOT NULL,
	jenis_pemeriksaan         TEXT         NOT NULL,
	tarif_pemeriksaan         INTEGER      NOT NULL,
	jasa_dokter               INTEGER      NOT NULL,
	created_at                TIMESTAMPTZ  NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_tgl_pemeriksaan ON radiology_examinations (tgl_pemeriksaan);`
