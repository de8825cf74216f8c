package model

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kg adalah massa beras dalam seperseratus kilogram (fixed point 2 desimal).
// Disimpan sebagai NUMERIC(12,2), di-JSON-kan sebagai angka 2 desimal.
// Akumulasi integer ⇒ tidak ada drift float berapa kali pun dijumlah.
type Kg int64

func KgFromFloat(f float64) Kg {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Kg(math.Round(f * 100))
}

func (k Kg) Float() float64 { return float64(k) / 100 }

func (k Kg) String() string {
	sign := ""
	v := int64(k)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (k Kg) MarshalJSON() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kg) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*k = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// kebijakan input lunak: nilai tak valid dianggap 0
		*k = 0
		return nil
	}
	*k = KgFromFloat(f)
	return nil
}

// Value menulis NUMERIC(12,2) sebagai string desimal.
func (k Kg) Value() (driver.Value, error) {
	return k.String(), nil
}

func (k *Kg) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*k = 0
		return nil
	case int64:
		*k = Kg(v * 100)
		return nil
	case float64:
		*k = KgFromFloat(v)
		return nil
	case []byte:
		return k.scanString(string(v))
	case string:
		return k.scanString(v)
	}
	return fmt.Errorf("kg: tipe %T tidak didukung", src)
}

func (k *Kg) scanString(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("kg: parse %q: %w", s, err)
	}
	*k = KgFromFloat(f)
	return nil
}
