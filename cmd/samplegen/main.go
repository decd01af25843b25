// Command samplegen writes sample attendance workbooks for manual testing
// of the upload endpoint. It produces both a CSV and an XLSX covering a
// full year for a small set of employees.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var employees = []string{
	"John Smith",
	"Sarah Johnson",
	"Michael Chen",
	"Emily Davis",
}

type row struct {
	name    string
	date    time.Time
	inTime  string
	outTime string
}

func main() {
	dir := flag.String("dir", ".", "directory to write sample files into")
	year := flag.Int("year", 2024, "calendar year to generate records for")
	seed := flag.Int64("seed", 1, "random seed, fixed by default so output is reproducible")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	rows := generate(rng, *year)

	csvPath := filepath.Join(*dir, "sample-attendance.csv")
	if err := writeCSV(csvPath, rows); err != nil {
		log.Fatalf("write csv: %v", err)
	}

	xlsxPath := filepath.Join(*dir, "sample-attendance.xlsx")
	if err := writeXLSX(xlsxPath, rows); err != nil {
		log.Fatalf("write xlsx: %v", err)
	}

	fmt.Printf("wrote %d records for %d employees\n", len(rows), len(employees))
	fmt.Println(csvPath)
	fmt.Println(xlsxPath)
}

func generate(rng *rand.Rand, year int) []row {
	var rows []row
	for _, name := range employees {
		for month := time.January; month <= time.December; month++ {
			days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
			for day := 1; day <= days; day++ {
				date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
				in, out := dayTimes(rng, date)
				rows = append(rows, row{name: name, date: date, inTime: in, outTime: out})
			}
		}
	}
	return rows
}

// dayTimes picks clock-in and clock-out strings for a date. Sundays are
// always empty, Saturdays are a coin-flip half day, and weekdays have a
// small chance of leave, late arrival, early exit or overtime.
func dayTimes(rng *rand.Rand, date time.Time) (string, string) {
	switch date.Weekday() {
	case time.Sunday:
		return "", ""
	case time.Saturday:
		if rng.Float64() < 0.5 {
			return "10:00", "14:00"
		}
		return "", ""
	}

	if rng.Float64() < 0.05 {
		return "", ""
	}

	inHour, inMinute := 10, rng.Intn(45)
	if rng.Float64() < 0.1 {
		inMinute = 15 + rng.Intn(30)
	}

	outHour, outMinute := 18, rng.Intn(45)
	switch {
	case rng.Float64() < 0.05:
		outHour, outMinute = 17, 30+rng.Intn(30)
	case rng.Float64() < 0.05:
		outHour, outMinute = 19, rng.Intn(30)
	}

	return fmt.Sprintf("%02d:%02d", inHour, inMinute), fmt.Sprintf("%02d:%02d", outHour, outMinute)
}

func writeCSV(path string, rows []row) error {
	var sb strings.Builder
	sb.WriteString("Employee Name,Date,In-Time,Out-Time\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s\n", r.name, r.date.Format("2006-01-02"), r.inTime, r.outTime))
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

func writeXLSX(path string, rows []row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Employee Name/ID", "Date", "In-Time", "Out-Time"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, r := range rows {
		values := []any{r.name, r.date.Format("2006-01-02"), r.inTime, r.outTime}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
