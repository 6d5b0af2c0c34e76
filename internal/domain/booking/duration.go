package booking

import (
	"regexp"
	"strconv"
	"strings"
)

// Duração padrão quando o texto do serviço está vazio ou irreconhecível.
const DefaultDurationMinutes = 60

// As quatro variantes aceitas, na ordem de precedência.
var (
	reHourMinute = regexp.MustCompile(`^(\d+)h(\d+)m?$`) // "1h30m", "1h30"
	reMinutes    = regexp.MustCompile(`^(\d+)min$`)      // "90min"
	reHours      = regexp.MustCompile(`^(\d+)h$`)        // "2h"
	reBareNumber = regexp.MustCompile(`^(\d+)$`)         // "45", "3"
)

// ParseDurationText converte a duração em texto livre de um serviço para
// minutos. Função total: nunca falha, qualquer entrada não reconhecida
// vira DefaultDurationMinutes.
//
// Regra do número puro: 10 < N <= 180 é lido como minutos ("45" = 45min);
// fora disso é lido como horas ("3" = 3h). Heurística herdada do cadastro
// livre do painel, onde o admin digita tanto "90" quanto "2".
func ParseDurationText(text string) int {
	cleaned := strings.ToLower(stripSpaces(text))
	if cleaned == "" {
		return DefaultDurationMinutes
	}

	if m := reHourMinute.FindStringSubmatch(cleaned); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		return normalize(h*60 + min)
	}

	if m := reMinutes.FindStringSubmatch(cleaned); m != nil {
		n, _ := strconv.Atoi(m[1])
		return normalize(n)
	}

	if m := reHours.FindStringSubmatch(cleaned); m != nil {
		h, _ := strconv.Atoi(m[1])
		return normalize(h * 60)
	}

	if m := reBareNumber.FindStringSubmatch(cleaned); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n > 10 && n <= 180 {
			return normalize(n)
		}
		return normalize(n * 60)
	}

	return DefaultDurationMinutes
}

func normalize(minutes int) int {
	if minutes <= 0 {
		return DefaultDurationMinutes
	}
	return minutes
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
