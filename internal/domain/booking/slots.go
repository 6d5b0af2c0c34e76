package booking

import (
	"sort"
	"time"
)

// Cadência fixa dos horários ofertados. Toda marcação começa em :00 ou :30,
// independente da duração do serviço.
const SlotStepMinutes = 30

// Window é uma janela de atendimento ("09:00"–"21:00") já filtrada por
// dia da semana e disponibilidade.
type Window struct {
	Start string
	End   string
}

// Busy é um intervalo já ocupado no livro de agendamentos.
type Busy struct {
	Start       time.Time
	DurationMin int
}

// Overlaps aplica interseção de intervalos semiabertos:
// [aStart, aStart+aMin) cruza [bStart, bStart+bMin).
func Overlaps(aStart time.Time, aMin int, bStart time.Time, bMin int) bool {
	aEnd := aStart.Add(time.Duration(aMin) * time.Minute)
	bEnd := bStart.Add(time.Duration(bMin) * time.Minute)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// BuildSlots gera os horários livres de um serviço em um dia.
//
// Percorre cada janela em passos de 30 minutos e descarta o candidato que:
//   - não termina antes do fechamento da janela;
//   - já passou (com folga de um passo, para hoje);
//   - cruza um intervalo ocupado.
//
// O resultado é ordenado, sem duplicatas, em "HH:MM". Dia sem janela ou
// inteiramente no passado devolve lista vazia, nunca erro.
func BuildSlots(date time.Time, windows []Window, durationMin int, busy []Busy, now time.Time) []string {
	loc := date.Location()
	step := SlotStepMinutes * time.Minute
	dur := time.Duration(durationMin) * time.Minute
	cutoff := now.Add(step)

	seen := make(map[string]bool)
	var slots []string

	for _, w := range windows {
		winStart, ok1 := clockOn(date, w.Start, loc)
		winEnd, ok2 := clockOn(date, w.End, loc)
		if !ok1 || !ok2 || !winStart.Before(winEnd) {
			continue
		}

		for cur := winStart; !cur.Add(dur).After(winEnd); cur = cur.Add(step) {
			if cur.Before(cutoff) {
				continue
			}
			if conflictsAny(cur, durationMin, busy) {
				continue
			}

			hm := cur.Format("15:04")
			if !seen[hm] {
				seen[hm] = true
				slots = append(slots, hm)
			}
		}
	}

	sort.Strings(slots)
	return slots
}

func conflictsAny(start time.Time, durationMin int, busy []Busy) bool {
	for _, b := range busy {
		if Overlaps(start, durationMin, b.Start, b.DurationMin) {
			return true
		}
	}
	return false
}

// WithinWindows confere se uma marcação de durationMin começando em hm
// cabe inteira em alguma das janelas.
func WithinWindows(hm string, durationMin int, windows []Window) bool {
	start, ok := clockMinutes(hm)
	if !ok {
		return false
	}
	end := start + durationMin

	for _, w := range windows {
		ws, ok1 := clockMinutes(w.Start)
		we, ok2 := clockMinutes(w.End)
		if !ok1 || !ok2 {
			continue
		}
		if start >= ws && end <= we {
			return true
		}
	}
	return false
}

// At ancora um "HH:MM" no dia e fuso da data dada.
func At(date time.Time, hm string) (time.Time, bool) {
	return clockOn(date, hm, date.Location())
}

func clockOn(date time.Time, hm string, loc *time.Location) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), true
}

func clockMinutes(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
