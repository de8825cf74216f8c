package model

import (
	"time"

	"github.com/google/uuid"

	operatorModel "zakatku_backend/internals/features/operators/model"
)

// Metode pembayaran yang dikenal
const (
	PaymentCash     = "cash"
	PaymentRice     = "rice"
	PaymentTransfer = "transfer"
)

func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentRice || m == PaymentTransfer
}

// TransactionModel merepresentasikan satu event donasi di tabel transactions.
// Nominal uang dalam rupiah (int64), beras dalam Kg fixed-point.
// total_amount / total_rice SELALU dihitung ulang lewat ComputeTotals —
// tidak pernah di-edit langsung.
type TransactionModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	DonorName string `gorm:"column:donor_name;size:100;not null" json:"donor_name"`
	Address   string `gorm:"column:address;type:text" json:"address"`
	Kelurahan string `gorm:"column:kelurahan;size:100" json:"kelurahan"`
	Kecamatan string `gorm:"column:kecamatan;size:100" json:"kecamatan"`
	Kota      string `gorm:"column:kota;size:100" json:"kota"`
	Phone     string `gorm:"column:phone;size:30" json:"phone"`

	ZakatFitrahAmount int64 `gorm:"column:zakat_fitrah_amount;not null;default:0" json:"zakat_fitrah_amount"`
	ZakatFitrahRice   Kg    `gorm:"column:zakat_fitrah_rice;type:numeric(12,2);not null;default:0" json:"zakat_fitrah_rice"`
	ZakatMaalAmount   int64 `gorm:"column:zakat_maal_amount;not null;default:0" json:"zakat_maal_amount"`
	InfaqAmount       int64 `gorm:"column:infaq_amount;not null;default:0" json:"infaq_amount"`
	ShodaqohAmount    int64 `gorm:"column:shodaqoh_amount;not null;default:0" json:"shodaqoh_amount"`
	FidyahAmount      int64 `gorm:"column:fidyah_amount;not null;default:0" json:"fidyah_amount"`
	FidyahRice        Kg    `gorm:"column:fidyah_rice;type:numeric(12,2);not null;default:0" json:"fidyah_rice"`
	WakafAmount       int64 `gorm:"column:wakaf_amount;not null;default:0" json:"wakaf_amount"`
	HibahAmount       int64 `gorm:"column:hibah_amount;not null;default:0" json:"hibah_amount"`

	TotalAmount int64 `gorm:"column:total_amount;not null;default:0" json:"total_amount"`
	TotalRice   Kg    `gorm:"column:total_rice;type:numeric(12,2);not null;default:0" json:"total_rice"`

	PaymentMethod   string `gorm:"column:payment_method;type:varchar(20);not null;default:'cash'" json:"payment_method"`
	TransferReceipt string `gorm:"column:transfer_receipt;type:text" json:"transfer_receipt,omitempty"`
	Notes           string `gorm:"column:notes;type:text" json:"notes,omitempty"`

	OperatorID uuid.UUID                    `gorm:"column:operator_id;type:uuid;not null" json:"operator_id"`
	Operator   *operatorModel.OperatorModel `gorm:"foreignKey:OperatorID;references:ID" json:"operator,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

// ComputeTotals menghitung ulang total uang dan total beras dari field
// kategori. Dipanggil setiap create dan setiap update, sebelum persist.
func (t *TransactionModel) ComputeTotals() {
	t.TotalAmount = t.ZakatFitrahAmount +
		t.ZakatMaalAmount +
		t.InfaqAmount +
		t.ShodaqohAmount +
		t.FidyahAmount +
		t.WakafAmount +
		t.HibahAmount
	t.TotalRice = t.ZakatFitrahRice + t.FidyahRice
}

// ClampNegatives menegakkan invariant ≥ 0 di sisi aplikasi (kebijakan input
// lunak: nilai minus diperlakukan seperti tidak diisi).
func (t *TransactionModel) ClampNegatives() {
	for _, p := range []*int64{
		&t.ZakatFitrahAmount, &t.ZakatMaalAmount, &t.InfaqAmount,
		&t.ShodaqohAmount, &t.FidyahAmount, &t.WakafAmount, &t.HibahAmount,
	} {
		if *p < 0 {
			*p = 0
		}
	}
	if t.ZakatFitrahRice < 0 {
		t.ZakatFitrahRice = 0
	}
	if t.FidyahRice < 0 {
		t.FidyahRice = 0
	}
}
