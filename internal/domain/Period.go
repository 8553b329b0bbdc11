package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid period")

var periodKeyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// PeriodKey é a chave ordenável do ledger mensal no formato yyyy-mm,
// onde mm é o índice do mês começando em zero (janeiro = 00)
type PeriodKey string

// Period identifica um mês; Month é zero-based como no armazenamento
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func NewPeriod(year, month int) (Period, error) {
	p := Period{Year: year, Month: month}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodFromTime converte uma data no período correspondente
func PeriodFromTime(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month()) - 1}
}

func (p Period) Validate() error {
	if p.Month < 0 || p.Month > 11 {
		return fmt.Errorf("%w: month %d out of range 0-11", ErrInvalidPeriod, p.Month)
	}
	if p.Year < 1 || p.Year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, p.Year)
	}
	return nil
}

func (p Period) Key() PeriodKey {
	return PeriodKey(fmt.Sprintf("%04d-%02d", p.Year, p.Month))
}

func (k PeriodKey) String() string {
	return string(k)
}

// ParsePeriodKey faz o caminho inverso de Period.Key
func ParsePeriodKey(key string) (Period, error) {
	matches := periodKeyPattern.FindStringSubmatch(key)
	if matches == nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, key)
	}

	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	return NewPeriod(year, month)
}
