package domain

import "time"

// DateRange é um intervalo fechado de datas de calendário.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TrailingWindow retorna a janela de `days` dias terminando em anchor.
func TrailingWindow(anchor time.Time, days int) DateRange {
	return DateRange{
		Start: anchor.AddDate(0, 0, -(days - 1)),
		End:   anchor,
	}
}
