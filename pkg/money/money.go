package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Importi monetari interi e non negativi, senza float.
// I budget dei club arrivano ai miliardi: ogni conto passa da decimal.

// ErrInvalid indica un importo negativo, non intero, non canonico o fuori
// dal range delle colonne bigint.
var ErrInvalid = errors.New("money: invalid amount")

// maxAmount e' il massimo importo memorizzabile in una colonna bigint.
var maxAmount = decimal.NewFromInt(math.MaxInt64)

// ErrNegative indica un'operazione che porterebbe l'importo sotto zero.
var ErrNegative = errors.New("money: result would be negative")

// Value e' un importo intero non negativo a precisione esatta.
// Lo zero value vale 0.
type Value struct {
	d decimal.Decimal
}

// Zero ritorna l'importo 0.
func Zero() Value {
	return Value{d: decimal.Zero}
}

// Parse legge solo cifre decimali in forma canonica: niente segno,
// esponente, parte frazionaria o zeri iniziali, cosi' l'importo salvato
// torna identico alla stringa ricevuta.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty", ErrInvalid)
	}
	if !canonicalDigits(s) {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return fromDecimal(d)
}

// FromInt64 converte un intero, rifiutando i negativi.
func FromInt64(n int64) (Value, error) {
	return fromDecimal(decimal.NewFromInt(n))
}

// MustInt64 e' FromInt64 per costanti note; va in panic sui negativi.
func MustInt64(n int64) Value {
	v, err := FromInt64(n)
	if err != nil {
		panic(err)
	}
	return v
}

func canonicalDigits(s string) bool {
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func fromDecimal(d decimal.Decimal) (Value, error) {
	if d.Sign() < 0 {
		return Value{}, fmt.Errorf("%w: negative", ErrInvalid)
	}
	if !d.IsInteger() {
		return Value{}, fmt.Errorf("%w: not integral", ErrInvalid)
	}
	if d.GreaterThan(maxAmount) {
		return Value{}, fmt.Errorf("%w: exceeds %s", ErrInvalid, maxAmount)
	}
	return Value{d: d.Truncate(0)}, nil
}

// MulInt moltiplica per un fattore intero non negativo.
func (v Value) MulInt(factor int64) (Value, error) {
	return fromDecimal(v.d.Mul(decimal.NewFromInt(factor)))
}

// Add somma due importi; fallisce con ErrInvalid oltre il massimo bigint.
func (v Value) Add(other Value) (Value, error) {
	return fromDecimal(v.d.Add(other.d))
}

// Sub sottrae other; fallisce con ErrNegative se other > v.
func (v Value) Sub(other Value) (Value, error) {
	res := v.d.Sub(other.d)
	if res.Sign() < 0 {
		return Value{}, ErrNegative
	}
	return Value{d: res}, nil
}

// Cmp ritorna -1, 0 o +1.
func (v Value) Cmp(other Value) int {
	return v.d.Cmp(other.d)
}

func (v Value) IsZero() bool {
	return v.d.IsZero()
}

// String ritorna la forma decimale canonica, senza esponente.
func (v Value) String() string {
	return v.d.String()
}

// MarshalText serializza come stringa decimale (anche in JSON).
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText accetta solo stringhe decimali intere non negative.
func (v *Value) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON scrive l'importo come stringa, mai come numero JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON accetta sia "123" sia 123; il numero viene letto come
// testo, quindi non passa mai da float64.
func (v *Value) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return fmt.Errorf("%w: null", ErrInvalid)
	}
	s = strings.Trim(s, `"`)
	return v.UnmarshalText([]byte(s))
}

// Scan legge colonne bigint/numeric restituite dal driver.
func (v *Value) Scan(src any) error {
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return fmt.Errorf("money: scan: %w", err)
	}
	parsed, err := fromDecimal(d)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Value scrive l'importo come stringa: Postgres la converte in bigint
// senza passare da float.
func (v Value) Value() (driver.Value, error) {
	return v.String(), nil
}
