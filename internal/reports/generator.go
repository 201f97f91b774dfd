package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/jung-kurt/gofpdf"
)

// Generator renders the collected range data as PDF or CSV.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// rangeData is everything a report covers for one user and date range.
type rangeData struct {
	logs         []storage.HealthLog
	symptoms     []storage.Symptom
	appointments []storage.Appointment
}

func (g *Generator) Generate(format string, req CreateRequest, data rangeData) ([]byte, error) {
	switch format {
	case FormatPDF:
		return g.generatePDF(req, data)
	case FormatCSV:
		return g.generateCSV(data)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateCSV(data rangeData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "weight_kg", "sleep_hours", "water_litres", "energy_level", "mood", "notes"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	// Logs arrive newest first; the CSV reads better oldest first.
	for i := len(data.logs) - 1; i >= 0; i-- {
		l := data.logs[i]
		row := []string{
			l.Date,
			formatFloat(l.WeightKg),
			formatFloat(l.SleepHours),
			formatFloat(l.WaterLitres),
			formatInt(l.EnergyLevel),
			l.Mood,
			l.Notes,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (g *Generator) generatePDF(req CreateRequest, data rangeData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "AyurSutra Health Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", req.From, req.To))
	pdf.Ln(12)

	summary := summarize(data)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{
		fmt.Sprintf("Days logged: %d", len(data.logs)),
		fmt.Sprintf("Weight change: %s", summary.weightDelta),
		fmt.Sprintf("Average sleep: %s h", summary.avgSleep),
		fmt.Sprintf("Average water intake: %s l", summary.avgWater),
		fmt.Sprintf("Average energy level: %s", summary.avgEnergy),
		fmt.Sprintf("Symptoms reported: %d", len(data.symptoms)),
		fmt.Sprintf("Consultations in period: %d", len(data.appointments)),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}
	pdf.Ln(7)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Daily logs")
	pdf.Ln(8)
	g.drawLogsTable(pdf, data.logs)

	if len(data.symptoms) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 8, "Symptoms")
		pdf.Ln(8)
		g.drawSymptoms(pdf, data.symptoms)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *Generator) drawLogsTable(pdf *gofpdf.Fpdf, logs []storage.HealthLog) {
	widths := []float64{25, 22, 22, 22, 22, 35}
	headers := []string{"Date", "Weight", "Sleep", "Water", "Energy", "Mood"}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	// Cap the table at two weeks of rows so the report stays one page.
	rows := logs
	if len(rows) > 14 {
		rows = rows[:14]
	}
	for _, l := range rows {
		cells := []string{
			l.Date,
			formatFloat(l.WeightKg),
			formatFloat(l.SleepHours),
			formatFloat(l.WaterLitres),
			formatInt(l.EnergyLevel),
			l.Mood,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func (g *Generator) drawSymptoms(pdf *gofpdf.Fpdf, symptoms []storage.Symptom) {
	pdf.SetFont("Arial", "", 9)
	for _, s := range symptoms {
		line := fmt.Sprintf("%s  %s (severity %s)", s.LoggedAt.Format("2006-01-02"), s.Name, s.Severity)
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
}

type summaryStats struct {
	weightDelta string
	avgSleep    string
	avgWater    string
	avgEnergy   string
}

func summarize(data rangeData) summaryStats {
	stats := summaryStats{weightDelta: "-", avgSleep: "-", avgWater: "-", avgEnergy: "-"}

	var firstWeight, lastWeight *float64
	var sleepSum, waterSum float64
	var sleepCount, waterCount int
	var energySum, energyCount int

	// Logs are newest first.
	for _, l := range data.logs {
		if l.WeightKg != nil {
			if lastWeight == nil {
				lastWeight = l.WeightKg
			}
			firstWeight = l.WeightKg
		}
		if l.SleepHours != nil {
			sleepSum += *l.SleepHours
			sleepCount++
		}
		if l.WaterLitres != nil {
			waterSum += *l.WaterLitres
			waterCount++
		}
		if l.EnergyLevel != nil {
			energySum += *l.EnergyLevel
			energyCount++
		}
	}

	if firstWeight != nil && lastWeight != nil {
		stats.weightDelta = fmt.Sprintf("%+.1f kg", *lastWeight-*firstWeight)
	}
	if sleepCount > 0 {
		stats.avgSleep = fmt.Sprintf("%.1f", sleepSum/float64(sleepCount))
	}
	if waterCount > 0 {
		stats.avgWater = fmt.Sprintf("%.1f", waterSum/float64(waterCount))
	}
	if energyCount > 0 {
		stats.avgEnergy = fmt.Sprintf("%.1f", float64(energySum)/float64(energyCount))
	}

	return stats
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
