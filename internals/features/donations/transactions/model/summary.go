package model

import "time"

// Summary adalah agregat per-kategori + grand total atas satu himpunan
// transaksi (seluruh ledger atau hasil filter).
type Summary struct {
	TransactionCount int64 `gorm:"column:transaction_count" json:"transaction_count"`

	ZakatFitrahAmount int64 `gorm:"column:zakat_fitrah_amount" json:"zakat_fitrah_amount"`
	ZakatFitrahRice   Kg    `gorm:"column:zakat_fitrah_rice" json:"zakat_fitrah_rice"`
	ZakatMaalAmount   int64 `gorm:"column:zakat_maal_amount" json:"zakat_maal_amount"`
	InfaqAmount       int64 `gorm:"column:infaq_amount" json:"infaq_amount"`
	ShodaqohAmount    int64 `gorm:"column:shodaqoh_amount" json:"shodaqoh_amount"`
	FidyahAmount      int64 `gorm:"column:fidyah_amount" json:"fidyah_amount"`
	FidyahRice        Kg    `gorm:"column:fidyah_rice" json:"fidyah_rice"`
	WakafAmount       int64 `gorm:"column:wakaf_amount" json:"wakaf_amount"`
	HibahAmount       int64 `gorm:"column:hibah_amount" json:"hibah_amount"`

	TotalAmount int64 `gorm:"column:total_amount" json:"total_amount"`
	TotalRice   Kg    `gorm:"column:total_rice" json:"total_rice"`

	ComputedAt time.Time `gorm:"-" json:"computed_at"`
	// Stale true kalau hasil ini adalah last-known-good karena recompute
	// terakhir gagal di store.
	Stale bool `gorm:"-" json:"stale"`
}
