package regime

import (
	"fmt"

	"MarketPulse/internal/model"
)

// ClassifyTrend compares the latest price against its trailing baseline.
// Equality is not expansion.
func ClassifyTrend(price, sma float64, th Thresholds) model.TrendCall {
	if price > sma {
		return model.TrendCall{
			Phase:       model.TrendExpansion,
			Description: fmt.Sprintf("Trading above its %d-day baseline, indicating positive structural momentum.", th.TrendWindow),
			Tone:        model.TonePositive,
		}
	}
	return model.TrendCall{
		Phase:       model.TrendContraction,
		Description: fmt.Sprintf("Trading below its %d-day baseline, indicating structural headwinds.", th.TrendWindow),
		Tone:        model.ToneNegative,
	}
}

// ClassifySentiment buckets the momentum index. Readings exactly on a
// bound fall into the stable zone: both comparisons are strict.
func ClassifySentiment(momentum float64, th Thresholds) model.SentimentCall {
	switch {
	case momentum > th.HeatedAbove:
		return model.SentimentCall{
			Zone:        model.SentimentHeated,
			Description: "Sentiment is historically stretched; often correlates with news cycles or hype spikes.",
			Tone:        model.ToneWarning,
		}
	case momentum < th.DepressedBelow:
		return model.SentimentCall{
			Zone:        model.SentimentDepressed,
			Description: "Sentiment is historically low; may indicate over-reaction to negative news.",
			Tone:        model.TonePositive,
		}
	default:
		return model.SentimentCall{
			Zone:        model.SentimentStable,
			Description: "Sentiment is within standard deviation; price movement is likely rational.",
			Tone:        model.ToneNeutral,
		}
	}
}

// ClassifyRisk buckets realized volatility. A reading exactly on the
// threshold is stable.
func ClassifyRisk(volatility float64, th Thresholds) model.RiskCall {
	if volatility > th.HighVolatilityAbove {
		return model.RiskCall{
			Level:       model.RiskHighVolatility,
			Description: fmt.Sprintf("Short-term variance is %.2f%%, above the %.1f%% risk threshold.", volatility, th.HighVolatilityAbove),
			Tone:        model.ToneNegative,
		}
	}
	return model.RiskCall{
		Level:       model.RiskStable,
		Description: fmt.Sprintf("Short-term variance is %.2f%%.", volatility),
		Tone:        model.ToneNeutral,
	}
}

// Evaluate maps the latest scalar readings to the three independent regime
// calls. Callers must gate on sufficient history before invoking it;
// Evaluate itself never special-cases missing input.
func Evaluate(price, sma, momentum, volatility float64, th Thresholds) *model.Assessment {
	return &model.Assessment{
		Trend:     ClassifyTrend(price, sma, th),
		Sentiment: ClassifySentiment(momentum, th),
		Risk:      ClassifyRisk(volatility, th),
	}
}
