package inventory

// InsightReport aggregates the set of listings shown to the user after
// ranking, for the insights block of the results screen.
type InsightReport struct {
	Total           int
	AveragePrice    float64
	AverageMPG      float64
	AverageSafety   float64
	HighReliability int
	LowInsurance    int
	FuelEfficient   int // combined mpg >= 30
	CountByType     map[string]int
}

// Insights computes the report over the given listings.
func Insights(listings []Listing) InsightReport {
	report := InsightReport{
		Total:       len(listings),
		CountByType: make(map[string]int),
	}
	if len(listings) == 0 {
		return report
	}

	var price, mpg, safety float64
	for _, l := range listings {
		price += l.Price
		mpg += l.CombinedMPG()
		safety += float64(l.SafetyRating)

		if l.Reliability == TierHigh {
			report.HighReliability++
		}
		if l.Insurance == TierLow {
			report.LowInsurance++
		}
		if l.CombinedMPG() >= 30 {
			report.FuelEfficient++
		}
		report.CountByType[l.Type]++
	}

	n := float64(len(listings))
	report.AveragePrice = price / n
	report.AverageMPG = mpg / n
	report.AverageSafety = safety / n

	return report
}
