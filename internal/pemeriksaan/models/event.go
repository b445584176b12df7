package models

const (
	AksiCreate = "create"
	AksiUpdate = "update"
	AksiDelete = "delete"
)

// Event dikirim setelah data pemeriksaan berubah supaya daftar bulanan bisa dimuat ulang.
type Event struct {
	Aksi  string `json:"aksi"`
	ID    string `json:"id"`
	Bulan string `json:"bulan,omitempty"` // yyyy-MM
}
