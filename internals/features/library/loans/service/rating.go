package service

import "math"

// UnratedSentinel dikembalikan ComputeAverage saat belum ada skor sama sekali
// (buku belum pernah dirating; beda dengan skor 0).
const UnratedSentinel float64 = -1

// ComputeAverage: rata-rata aritmetika, dibulatkan 2 desimal.
// math.Round membulatkan half away from zero; skor selalu >= 0
// sehingga hasilnya sama dengan round-half-up.
func ComputeAverage(scores []float64) float64 {
	if len(scores) == 0 {
		return UnratedSentinel
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	avg := sum / float64(len(scores))
	return math.Round(avg*100) / 100
}
