package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
)

// buildInsightsPrompt собирает промпт для общих рыночных инсайтов
func buildInsightsPrompt(digest models.MarketDigest) string {
	var sb strings.Builder

	sb.WriteString("Analyze the following airline booking market data for Australia and provide key insights:\n\n")
	fmt.Fprintf(&sb, "Total Flights: %d\n", digest.TotalFlights)
	fmt.Fprintf(&sb, "Domestic Flights: %d\n", digest.DomesticFlights)
	fmt.Fprintf(&sb, "International Flights: %d\n", digest.InternationalFlights)
	fmt.Fprintf(&sb, "Average Price: $%.2f\n", digest.AveragePrice)
	fmt.Fprintf(&sb, "Price Range: $%.2f - $%.2f\n\n", digest.PriceRange.Min, digest.PriceRange.Max)

	sb.WriteString("Popular Routes:\n")
	sb.WriteString(formatPopularRoutes(digest.PopularRoutes))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Price Trends:\n%s\n\n", marshalIndent(digest.PriceTrends))
	fmt.Fprintf(&sb, "Seasonal Patterns:\n%s\n\n", marshalIndent(digest.SeasonalPatterns))
	fmt.Fprintf(&sb, "Demand Patterns:\n%s\n\n", marshalIndent(digest.DemandPatterns))

	sb.WriteString("Please provide:\n")
	sb.WriteString("1. Key market trends and insights\n")
	sb.WriteString("2. Opportunities for hostel businesses\n")
	sb.WriteString("3. Peak demand periods to watch\n")
	sb.WriteString("4. Recommendations for monitoring specific routes\n")
	sb.WriteString("5. Pricing observations and implications\n\n")
	sb.WriteString("Keep insights practical and actionable for hostel businesses monitoring travel demand.")

	return sb.String()
}

// buildRoutePerformancePrompt собирает промпт для анализа эффективности маршрутов
func buildRoutePerformancePrompt(summaries []models.RouteSummary) string {
	var sb strings.Builder

	sb.WriteString("Analyze the following route performance data:\n\n")

	// Не более 15 маршрутов в промпте
	limit := len(summaries)
	if limit > 15 {
		limit = 15
	}

	for _, route := range summaries[:limit] {
		fmt.Fprintf(&sb, "Route: %s -> %s, Popularity Score: %.1f, Avg Price: $%.2f, Demand Score: %.1f, Total Flights: %d\n",
			route.Origin, route.Destination,
			route.RoutePopularityScore, route.AveragePrice,
			route.AverageDemandScore, route.TotalFlights)
	}

	sb.WriteString("\nPlease provide:\n")
	sb.WriteString("1. Top performing routes and why\n")
	sb.WriteString("2. Underperforming routes with potential\n")
	sb.WriteString("3. New route opportunities\n")
	sb.WriteString("4. Seasonal route performance patterns\n")
	sb.WriteString("5. Strategic recommendations for route monitoring\n\n")
	sb.WriteString("Focus on identifying growth opportunities and market gaps.")

	return sb.String()
}

// buildPriceTrendPrompt собирает промпт для анализа ценовых трендов
func buildPriceTrendPrompt(summaries []models.RouteSummary) string {
	var sb strings.Builder

	sb.WriteString("Analyze the following airline price trend data for Australian routes:\n\n")

	limit := len(summaries)
	if limit > 15 {
		limit = 15
	}

	for _, route := range summaries[:limit] {
		trend := route.PriceTrend
		if trend == "" {
			trend = "unknown"
		}
		fmt.Fprintf(&sb, "Route: %s -> %s, Avg Price: $%.2f, Price Variance: %.2f, Trend: %s\n",
			route.Origin, route.Destination,
			route.AveragePrice, route.PriceVariance, trend)
	}

	sb.WriteString("\nPlease provide:\n")
	sb.WriteString("1. Routes with notable price movements\n")
	sb.WriteString("2. Likely drivers behind the observed trends\n")
	sb.WriteString("3. Routes where prices look likely to rise or fall next\n")
	sb.WriteString("4. Booking timing recommendations\n\n")
	sb.WriteString("Keep the analysis concise and specific to the listed routes.")

	return sb.String()
}

// formatPopularRoutes форматирует топ-5 популярных маршрутов для промпта
func formatPopularRoutes(routes []models.PopularRoute) string {
	if len(routes) == 0 {
		return "No route data available"
	}

	limit := len(routes)
	if limit > 5 {
		limit = 5
	}

	lines := make([]string, 0, limit)
	for _, route := range routes[:limit] {
		lines = append(lines, fmt.Sprintf("- %s -> %s: %d flights", route.Origin, route.Destination, route.FlightCount))
	}

	return strings.Join(lines, "\n")
}

func marshalIndent(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
