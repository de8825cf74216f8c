package dto

import (
	"strconv"
	"strings"

	"zakatku_backend/internals/features/donations/transactions/model"
)

// Rupiah menerima input nominal dengan kebijakan lunak: angka, string angka,
// string kosong, atau nilai tak valid — semua selain angka positif jadi 0.
// Form di lapangan sering mengirim field kosong, itu bukan alasan menolak
// satu transaksi.
type Rupiah int64

func (r *Rupiah) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*r = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		*r = 0
		return nil
	}
	*r = Rupiah(f)
	return nil
}

func (r Rupiah) Int64() int64 { return int64(r) }

type CreateTransactionRequest struct {
	DonorName string `json:"donor_name" validate:"required"`
	Address   string `json:"address"`
	Kelurahan string `json:"kelurahan"`
	Kecamatan string `json:"kecamatan"`
	Kota      string `json:"kota"`
	Phone     string `json:"phone"`

	ZakatFitrahAmount Rupiah   `json:"zakat_fitrah_amount"`
	ZakatFitrahRice   model.Kg `json:"zakat_fitrah_rice"`
	ZakatMaalAmount   Rupiah   `json:"zakat_maal_amount"`
	InfaqAmount       Rupiah   `json:"infaq_amount"`
	ShodaqohAmount    Rupiah   `json:"shodaqoh_amount"`
	FidyahAmount      Rupiah   `json:"fidyah_amount"`
	FidyahRice        model.Kg `json:"fidyah_rice"`
	WakafAmount       Rupiah   `json:"wakaf_amount"`
	HibahAmount       Rupiah   `json:"hibah_amount"`

	PaymentMethod   string `json:"payment_method" validate:"omitempty,oneof=cash rice transfer"`
	TransferReceipt string `json:"transfer_receipt"`
	Notes           string `json:"notes"`
}

// ToModel membentuk entitas baru. operator_id diambil dari session, BUKAN
// dari payload — klien tidak bisa mencatat atas nama orang lain.
func (req *CreateTransactionRequest) ToModel() *model.TransactionModel {
	method := req.PaymentMethod
	if !model.ValidPaymentMethod(method) {
		method = model.PaymentCash
	}
	t := &model.TransactionModel{
		DonorName: strings.TrimSpace(req.DonorName),
		Address:   req.Address,
		Kelurahan: req.Kelurahan,
		Kecamatan: req.Kecamatan,
		Kota:      req.Kota,
		Phone:     req.Phone,

		ZakatFitrahAmount: req.ZakatFitrahAmount.Int64(),
		ZakatFitrahRice:   req.ZakatFitrahRice,
		ZakatMaalAmount:   req.ZakatMaalAmount.Int64(),
		InfaqAmount:       req.InfaqAmount.Int64(),
		ShodaqohAmount:    req.ShodaqohAmount.Int64(),
		FidyahAmount:      req.FidyahAmount.Int64(),
		FidyahRice:        req.FidyahRice,
		WakafAmount:       req.WakafAmount.Int64(),
		HibahAmount:       req.HibahAmount.Int64(),

		PaymentMethod:   method,
		TransferReceipt: req.TransferReceipt,
		Notes:           req.Notes,
	}
	t.ClampNegatives()
	t.ComputeTotals()
	return t
}

// UpdateTransactionRequest adalah partial update dengan allow-list eksplisit:
// hanya field di struct ini yang bisa berubah. id, operator_id, created_at,
// total_* tidak punya tempat di sini — kalau klien mengirimnya, diabaikan.
type UpdateTransactionRequest struct {
	DonorName *string `json:"donor_name"`
	Address   *string `json:"address"`
	Kelurahan *string `json:"kelurahan"`
	Kecamatan *string `json:"kecamatan"`
	Kota      *string `json:"kota"`
	Phone     *string `json:"phone"`

	ZakatFitrahAmount *Rupiah   `json:"zakat_fitrah_amount"`
	ZakatFitrahRice   *model.Kg `json:"zakat_fitrah_rice"`
	ZakatMaalAmount   *Rupiah   `json:"zakat_maal_amount"`
	InfaqAmount       *Rupiah   `json:"infaq_amount"`
	ShodaqohAmount    *Rupiah   `json:"shodaqoh_amount"`
	FidyahAmount      *Rupiah   `json:"fidyah_amount"`
	FidyahRice        *model.Kg `json:"fidyah_rice"`
	WakafAmount       *Rupiah   `json:"wakaf_amount"`
	HibahAmount       *Rupiah   `json:"hibah_amount"`

	PaymentMethod   *string `json:"payment_method" validate:"omitempty,oneof=cash rice transfer"`
	TransferReceipt *string `json:"transfer_receipt"`
	Notes           *string `json:"notes"`
}

// Apply menyalin field yang terisi ke entitas; totals dihitung ulang oleh
// repository setelahnya (last-write-wins per field, tanpa version token).
func (req *UpdateTransactionRequest) Apply(t *model.TransactionModel) {
	if req.DonorName != nil {
		t.DonorName = strings.TrimSpace(*req.DonorName)
	}
	if req.Address != nil {
		t.Address = *req.Address
	}
	if req.Kelurahan != nil {
		t.Kelurahan = *req.Kelurahan
	}
	if req.Kecamatan != nil {
		t.Kecamatan = *req.Kecamatan
	}
	if req.Kota != nil {
		t.Kota = *req.Kota
	}
	if req.Phone != nil {
		t.Phone = *req.Phone
	}

	if req.ZakatFitrahAmount != nil {
		t.ZakatFitrahAmount = req.ZakatFitrahAmount.Int64()
	}
	if req.ZakatFitrahRice != nil {
		t.ZakatFitrahRice = *req.ZakatFitrahRice
	}
	if req.ZakatMaalAmount != nil {
		t.ZakatMaalAmount = req.ZakatMaalAmount.Int64()
	}
	if req.InfaqAmount != nil {
		t.InfaqAmount = req.InfaqAmount.Int64()
	}
	if req.ShodaqohAmount != nil {
		t.ShodaqohAmount = req.ShodaqohAmount.Int64()
	}
	if req.FidyahAmount != nil {
		t.FidyahAmount = req.FidyahAmount.Int64()
	}
	if req.FidyahRice != nil {
		t.FidyahRice = *req.FidyahRice
	}
	if req.WakafAmount != nil {
		t.WakafAmount = req.WakafAmount.Int64()
	}
	if req.HibahAmount != nil {
		t.HibahAmount = req.HibahAmount.Int64()
	}

	if req.PaymentMethod != nil && model.ValidPaymentMethod(*req.PaymentMethod) {
		t.PaymentMethod = *req.PaymentMethod
	}
	if req.TransferReceipt != nil {
		t.TransferReceipt = *req.TransferReceipt
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}
}

// UpdateNotesRequest untuk quick edit catatan saja.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}
