package utils

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const formatoData = "2006-01-02"

// Data é uma data civil (sem hora), serializada como "AAAA-MM-DD"
type Data time.Time

func NovaData(ano int, mes time.Month, dia int) Data {
	return Data(time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC))
}

// ParseData interpreta "AAAA-MM-DD"
func ParseData(s string) (Data, error) {
	t, err := time.Parse(formatoData, s)
	if err != nil {
		return Data{}, fmt.Errorf("data inválida %q, use AAAA-MM-DD", s)
	}
	return Data(t), nil
}

func (d Data) Time() time.Time { return time.Time(d) }

func (d Data) String() string { return time.Time(d).Format(formatoData) }

func (d Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Data) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("data deve ser texto AAAA-MM-DD")
	}
	v, err := ParseData(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Scan aceita o que os drivers devolvem para colunas date
func (d *Data) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Data{}
		return nil
	case time.Time:
		*d = NovaData(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		return d.scanTexto(v)
	case []byte:
		return d.scanTexto(string(v))
	}
	return fmt.Errorf("tipo não suportado para Data: %T", value)
}

func (d *Data) scanTexto(s string) error {
	if len(s) < len(formatoData) {
		return fmt.Errorf("data inválida %q", s)
	}
	v, err := ParseData(s[:len(formatoData)])
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Data) Value() (driver.Value, error) {
	return d.String(), nil
}

func (Data) GormDataType() string {
	return "date"
}
