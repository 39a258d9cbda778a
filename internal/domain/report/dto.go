package report

// EmployeeRow is one line of the per-employee leave report.
type EmployeeRow struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Department string `json:"department"`
	Total      int    `json:"total"`
	Approved   int    `json:"approved"`
	Pending    int    `json:"pending"`
	Rejected   int    `json:"rejected"`
	TotalDays  int    `json:"total_days"`
	BalanceCL  int    `json:"balance_cl"`
	BalanceSL  int    `json:"balance_sl"`
	BalanceEL  int    `json:"balance_el"`
}

// DepartmentRow aggregates requests over one observed department value.
type DepartmentRow struct {
	Department string `json:"department"`
	Headcount  int    `json:"headcount"`
	Total      int    `json:"total"`
	Approved   int    `json:"approved"`
	Pending    int    `json:"pending"`
	TotalDays  int    `json:"total_days"`
}

// MonthBucket is one month of the submission trend.
type MonthBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type YearSummary struct {
	TotalRequests int     `json:"total_requests"`
	ApprovalRate  int     `json:"approval_rate"`
	AvgDays       float64 `json:"avg_days"`
}

type MonthlyReport struct {
	Trend   []MonthBucket `json:"trend"`
	Summary YearSummary   `json:"summary"`
}
