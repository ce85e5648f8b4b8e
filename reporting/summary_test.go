package reporting

import (
	"io/ioutil"
	"strconv"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v2"

	"github.com/stretchr/testify/suite"
)

type suiteSummaryTester struct {
	suite.Suite
}

type FixtureBox struct {
	Month    string   `yaml:"month"`
	Services []string `yaml:"services"`
	Entries  []string `yaml:"entries"`
	Expense  int64    `yaml:"expense"`
}

type SummaryEntry struct {
	Name   string       `yaml:"name"`
	Boxes  []FixtureBox `yaml:"boxes"`
	Fixed  []string     `yaml:"fixed"`
	Expect []string     `yaml:"expect"`
}

func splitFields(raw string) []string {
	rawResult := strings.Split(raw, ",")
	var result []string
	for _, r := range rawResult {
		result = append(result, strings.TrimSpace(r))
	}

	return result
}

func mustInt64(s *suiteSummaryTester, raw string) int64 {
	val, err := strconv.ParseInt(raw, 10, 64)
	s.NoError(err)

	return val
}

func (se *SummaryEntry) records(s *suiteSummaryTester) []BoxRecord {
	records := make([]BoxRecord, 0, len(se.Boxes))

	for _, box := range se.Boxes {
		record := BoxRecord{Month: box.Month, ExpenseCents: box.Expense}

		for _, raw := range box.Services {
			result := splitFields(raw)
			record.Services = append(record.Services, ServiceLine{
				ServiceTypeID: mustInt64(s, result[0]),
				Name:          result[1],
				GrossCounted:  result[2] == "gross",
				AmountCents:   mustInt64(s, result[3]),
			})
		}

		for _, raw := range box.Entries {
			result := splitFields(raw)
			record.Entries = append(record.Entries, EntryLine{
				Kind:        result[0],
				AmountCents: mustInt64(s, result[1]),
			})
		}

		records = append(records, record)
	}

	return records
}

func (se *SummaryEntry) fixedCharges(s *suiteSummaryTester) []FixedCharge {
	charges := make([]FixedCharge, 0, len(se.Fixed))

	for _, raw := range se.Fixed {
		result := splitFields(raw)
		charges = append(charges, FixedCharge{
			Month:       result[0],
			AmountCents: mustInt64(s, result[1]),
		})
	}

	return charges
}

func (se *SummaryEntry) Test(s *suiteSummaryTester) {
	s.T().Run(se.Name, func(t *testing.T) {
		records := se.records(s)
		fixed := se.fixedCharges(s)

		summaries := Summarize(records, fixed)

		s.Len(summaries, len(se.Expect))

		for i, raw := range se.Expect {
			result := splitFields(raw)

			s.Equal(result[0], summaries[i].Month)
			s.Equal(mustInt64(s, result[1]), summaries[i].GrossCents, "gross %s", result[0])
			s.Equal(mustInt64(s, result[2]), summaries[i].OtherCents, "other %s", result[0])
			s.Equal(mustInt64(s, result[3]), summaries[i].PixCents, "pix %s", result[0])
			s.Equal(mustInt64(s, result[4]), summaries[i].DebitCents, "debit %s", result[0])
			s.Equal(mustInt64(s, result[5]), summaries[i].CreditCents, "credit %s", result[0])
			s.Equal(mustInt64(s, result[6]), summaries[i].VariableExpenseCents, "variable %s", result[0])
			s.Equal(mustInt64(s, result[7]), summaries[i].FixedExpenseCents, "fixed %s", result[0])
			s.Equal(mustInt64(s, result[8]), summaries[i].NetCents, "net %s", result[0])
		}

		// Sum of per-box gross-counted lines must survive the reduction.
		var want_gross int64
		for _, record := range records {
			for _, line := range record.Services {
				if line.GrossCounted {
					want_gross += line.AmountCents
				}
			}
		}
		var got_gross int64
		for _, summary := range summaries {
			got_gross += summary.GrossCents
		}
		s.Equal(want_gross, got_gross)

		// Month keys strictly descending.
		for i := 1; i < len(summaries); i++ {
			s.True(summaries[i-1].Month > summaries[i].Month)
		}
	})
}

func (s *suiteSummaryTester) TestSummarize() {
	summariesFile, err := ioutil.ReadFile("./fixtures/summaries.yaml")

	s.NoError(err)

	var entries []SummaryEntry
	err = yaml.Unmarshal(summariesFile, &entries)
	if err != nil {
		panic(err)
	}

	for _, entry := range entries {
		entry.Test(s)
	}
}

func (s *suiteSummaryTester) TestMarginZeroWhenNoGross() {
	summaries := Summarize(nil, []FixedCharge{{Month: "2026-01", AmountCents: 5000}})

	s.Len(summaries, 1)
	s.True(summaries[0].Margin.IsZero())
	s.Equal(int64(-5000), summaries[0].NetCents)
}

func (s *suiteSummaryTester) TestMarginRatio() {
	records := []BoxRecord{
		{
			Month: "2026-01",
			Services: []ServiceLine{
				{ServiceTypeID: 1, Name: "Wash", GrossCounted: true, AmountCents: 10000},
			},
			ExpenseCents: 2500,
		},
	}

	summaries := Summarize(records, nil)

	s.Len(summaries, 1)
	s.Equal("0.75", summaries[0].Margin.String())
}

// An empty window must come out as an empty slice, not nil: the summary
// cache stores the result as JSON, and `[]` is what lets a warmed empty
// window read back as a hit.
func (s *suiteSummaryTester) TestEmptyWindowMarshalsAsEmptyList() {
	summaries := Summarize(nil, nil)

	s.NotNil(summaries)
	s.Len(summaries, 0)
}

func TestSummarySuite(t *testing.T) {
	suite.Run(t, new(suiteSummaryTester))
}
