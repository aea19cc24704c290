package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/report"
)

func TestSummarizeEmpty(t *testing.T) {
	summary := report.Summarize(nil)

	assert.Equal(t, 0, summary.Total)
	assert.Zero(t, summary.TotalSalary)
	assert.Zero(t, summary.AvgSalary)
	assert.Zero(t, summary.MaxSalary)
	assert.Zero(t, summary.MinSalary)
	assert.Empty(t, summary.DesignationCounts)

	require.Len(t, summary.SalaryBuckets, 4)
	for i, bucket := range summary.SalaryBuckets {
		assert.Equal(t, report.BucketLabels[i], bucket.Label)
		assert.Equal(t, 0, bucket.Count)
	}
}

func TestSummarizeStatistics(t *testing.T) {
	employees := []domain.Employee{
		{ID: 1, FirstName: "Asha", LastName: "Rao", Salary: 250000, Designation: "Engineer"},
		{ID: 2, FirstName: "Ben", LastName: "Iyer", Salary: 750000, Designation: "Manager"},
		{ID: 3, FirstName: "Cara", LastName: "Das", Salary: 500000, Designation: "Engineer"},
	}

	summary := report.Summarize(employees)

	assert.Equal(t, 3, summary.Total)
	assert.InDelta(t, 1500000, summary.TotalSalary, 1e-9)
	assert.InDelta(t, 500000, summary.AvgSalary, 1e-9)
	assert.InDelta(t, 750000, summary.MaxSalary, 1e-9)
	assert.InDelta(t, 250000, summary.MinSalary, 1e-9)
}

func TestSalaryBucketBoundaries(t *testing.T) {
	cases := []struct {
		salary float64
		label  string
	}{
		{299999.99, "< 3L"},
		{300000, "3L - 6L"},
		{599999.99, "3L - 6L"},
		{600000, "6L - 10L"},
		{999999.99, "6L - 10L"},
		{1000000, "> 10L"},
		{0, "< 3L"},
	}

	for _, tc := range cases {
		summary := report.Summarize([]domain.Employee{{ID: 1, Salary: tc.salary, Designation: "X"}})
		for _, bucket := range summary.SalaryBuckets {
			if bucket.Label == tc.label {
				assert.Equalf(t, 1, bucket.Count, "salary %v should land in %q", tc.salary, tc.label)
			} else {
				assert.Equalf(t, 0, bucket.Count, "salary %v must not land in %q", tc.salary, bucket.Label)
			}
		}
	}
}

func TestBucketOrderIsFixed(t *testing.T) {
	summary := report.Summarize(nil)
	labels := make([]string, 0, len(summary.SalaryBuckets))
	for _, bucket := range summary.SalaryBuckets {
		labels = append(labels, bucket.Label)
	}
	assert.Equal(t, []string{"< 3L", "3L - 6L", "6L - 10L", "> 10L"}, labels)
}

func TestDesignationCountsFirstSeenOrder(t *testing.T) {
	employees := []domain.Employee{
		{ID: 1, FirstName: "X", Designation: "A"},
		{ID: 2, FirstName: "Y", Designation: "B"},
		{ID: 3, FirstName: "Z", Designation: "A"},
	}

	summary := report.Summarize(employees)

	require.Len(t, summary.DesignationCounts, 2)
	assert.Equal(t, "A", summary.DesignationCounts[0].Designation)
	assert.Equal(t, 2, summary.DesignationCounts[0].Count)
	assert.Equal(t, "B", summary.DesignationCounts[1].Designation)
	assert.Equal(t, 1, summary.DesignationCounts[1].Count)
}
