// Package report derives dashboard aggregates from the employee set. All
// functions are pure; the caller supplies a fresh snapshot on every
// invocation.
package report

import "github.com/spec-kit/employee-directory/internal/domain"

// Salary bucket boundaries, half-open on the lower side: a salary of exactly
// 300000 belongs to "3L - 6L".
const (
	bucketLow  = 300_000
	bucketMid  = 600_000
	bucketHigh = 1_000_000
)

// BucketLabels lists the fixed histogram buckets in presentation order.
var BucketLabels = []string{"< 3L", "3L - 6L", "6L - 10L", "> 10L"}

// DesignationCount pairs a job title with the number of employees holding it.
// Counts are presented in first-seen order over the input, not sorted.
type DesignationCount struct {
	Designation string `json:"designation"`
	Count       int    `json:"count"`
}

// SalaryBucket is one histogram bar.
type SalaryBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary holds every dashboard aggregate.
type Summary struct {
	Total             int                `json:"total"`
	TotalSalary       float64            `json:"total_salary"`
	AvgSalary         float64            `json:"avg_salary"`
	MaxSalary         float64            `json:"max_salary"`
	MinSalary         float64            `json:"min_salary"`
	DesignationCounts []DesignationCount `json:"designation_counts"`
	SalaryBuckets     []SalaryBucket     `json:"salary_buckets"`
}

// Summarize computes the aggregates over the given employees. An empty input
// yields zeros throughout; there are no error conditions.
func Summarize(employees []domain.Employee) Summary {
	summary := Summary{
		DesignationCounts: designationCounts(employees),
		SalaryBuckets:     salaryBuckets(employees),
	}

	summary.Total = len(employees)
	if summary.Total == 0 {
		return summary
	}

	summary.MinSalary = employees[0].Salary
	summary.MaxSalary = employees[0].Salary
	for _, emp := range employees {
		summary.TotalSalary += emp.Salary
		if emp.Salary < summary.MinSalary {
			summary.MinSalary = emp.Salary
		}
		if emp.Salary > summary.MaxSalary {
			summary.MaxSalary = emp.Salary
		}
	}
	summary.AvgSalary = summary.TotalSalary / float64(summary.Total)

	return summary
}

func designationCounts(employees []domain.Employee) []DesignationCount {
	index := make(map[string]int, len(employees))
	counts := make([]DesignationCount, 0)
	for _, emp := range employees {
		if i, seen := index[emp.Designation]; seen {
			counts[i].Count++
			continue
		}
		index[emp.Designation] = len(counts)
		counts = append(counts, DesignationCount{Designation: emp.Designation, Count: 1})
	}
	return counts
}

func salaryBuckets(employees []domain.Employee) []SalaryBucket {
	buckets := make([]SalaryBucket, len(BucketLabels))
	for i, label := range BucketLabels {
		buckets[i] = SalaryBucket{Label: label}
	}

	for _, emp := range employees {
		switch {
		case emp.Salary < bucketLow:
			buckets[0].Count++
		case emp.Salary < bucketMid:
			buckets[1].Count++
		case emp.Salary < bucketHigh:
			buckets[2].Count++
		default:
			buckets[3].Count++
		}
	}
	return buckets
}
