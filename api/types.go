package api

import (
	"time"

	oneclient "github.com/enterpriseone/oneclient"
)

// Lead is a CRM lead record.
type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Company    string    `json:"company"`
	Status     string    `json:"status"`
	Value      float64   `json:"value"`
	AssignedTo string    `json:"assigned_to"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeadInput creates or replaces a lead.
type LeadInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company string  `json:"company"`
	Status  string  `json:"status,omitempty"`
	Value   float64 `json:"value"`
}

// Deal is a CRM deal record.
type Deal struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Value      float64   `json:"value"`
	Stage      string    `json:"stage"`
	LeadID     string    `json:"lead_id,omitempty"`
	AssignedTo string    `json:"assigned_to"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DealInput creates a deal.
type DealInput struct {
	Title  string  `json:"title"`
	Value  float64 `json:"value"`
	Stage  string  `json:"stage,omitempty"`
	LeadID string  `json:"lead_id,omitempty"`
}

// Project is a project record.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectInput creates a project.
type ProjectInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Value       float64 `json:"value"`
	ClientName  string  `json:"client_name"`
	ClientEmail string  `json:"client_email"`
	Status      string  `json:"status,omitempty"`
}

// ProjectUpdate is a partial project update; nil fields are untouched.
// Completing a project triggers server-side invoice generation.
type ProjectUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	ClientName  *string  `json:"client_name,omitempty"`
	ClientEmail *string  `json:"client_email,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// Task is a project task record.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Project     string    `json:"project"`
	DueDate     string    `json:"due_date,omitempty"`
	AssignedTo  string    `json:"assigned_to"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskInput creates a task.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Project     string `json:"project,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// TaskUpdate is a partial task update; nil fields are untouched.
type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Project     *string `json:"project,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
}

// Leave is an HR leave request.
type Leave struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Type       string    `json:"type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	ApprovedBy string    `json:"approved_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeaveInput submits a leave request.
type LeaveInput struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason,omitempty"`
}

// InvoiceItem is one invoice line.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// Invoice is a finance invoice record. The server assigns the number,
// computes the total, and starts every invoice in draft.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	ClientName    string        `json:"client_name"`
	ClientEmail   string        `json:"client_email"`
	Items         []InvoiceItem `json:"items"`
	Total         float64       `json:"total"`
	Status        string        `json:"status"`
	DueDate       string        `json:"due_date"`
	CreatedBy     string        `json:"created_by"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// InvoiceInput creates an invoice.
type InvoiceInput struct {
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	Items       []InvoiceItem `json:"items"`
	DueDate     string        `json:"due_date"`
}

// Expense is a finance expense record.
type Expense struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Amount          float64   `json:"amount"`
	Category        string    `json:"category"`
	Status          string    `json:"status"`
	SubmittedBy     string    `json:"submitted_by"`
	SubmittedByName string    `json:"submitted_by_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ExpenseInput submits an expense.
type ExpenseInput struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
}

// Plan is one subscription tier.
type Plan struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
}

// CheckoutSession is a started hosted-checkout session.
type CheckoutSession struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// CheckoutStatus reports the payment state of a checkout session. Polling
// it until PaymentStatus is "paid" is what activates the plan.
type CheckoutStatus struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}

// PaymentMethod is a stored card, number masked to its last four digits.
type PaymentMethod struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	CardNumber     string    `json:"card_number"`
	Expiry         string    `json:"expiry"`
	CardholderName string    `json:"cardholder_name"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"created_at"`
}

// PaymentMethodInput adds a card.
type PaymentMethodInput struct {
	CardNumber     string `json:"card_number"`
	Expiry         string `json:"expiry"`
	CVC            string `json:"cvc"`
	CardholderName string `json:"cardholder_name"`
}

// Notification is one in-app notification.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditLogEntry is one server-side audit record.
type AuditLogEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	Details   string    `json:"details"`
	Company   string    `json:"tenant_company"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardStats are the workspace-wide counters on the dashboard.
type DashboardStats struct {
	Leads           int     `json:"leads"`
	Deals           int     `json:"deals"`
	Tasks           int     `json:"tasks"`
	Employees       int     `json:"employees"`
	PendingLeaves   int     `json:"pending_leaves"`
	Invoices        int     `json:"invoices"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingExpenses int     `json:"pending_expenses"`
}

// DomainOffer is one extension's availability and price for a base name.
type DomainOffer struct {
	Domain    string  `json:"domain"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}

// DomainRegistration is a purchased domain.
type DomainRegistration struct {
	ID          string    `json:"id"`
	Domain      string    `json:"domain"`
	OwnerEmail  string    `json:"owner_email"`
	Status      string    `json:"status"`
	PurchasedAt time.Time `json:"purchased_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Feedback is one comment on a validation idea.
type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackInput adds a comment to an idea.
type FeedbackInput struct {
	Content   string `json:"content"`
	Sentiment string `json:"sentiment,omitempty"`
}

// Idea is a validation board entry, ordered by votes.
type Idea struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Priority      string     `json:"priority"`
	Votes         int        `json:"votes"`
	Voters        []string   `json:"voters"`
	Feedback      []Feedback `json:"feedback"`
	Status        string     `json:"status"`
	CreatedBy     string     `json:"created_by"`
	CreatedByName string     `json:"created_by_name"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IdeaInput creates a validation idea.
type IdeaInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// VoteResult reports whether a vote call added or removed the vote.
type VoteResult struct {
	Status string `json:"status"`
	Action string `json:"action"`
}

// CreateUserInput invites a teammate into the workspace. The server
// flags the new account for mandatory biometric setup on first login.
type CreateUserInput struct {
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Password   string         `json:"password"`
	Role       oneclient.Role `json:"role"`
	Department string         `json:"department,omitempty"`
}

// CreateUserResult is the server's acknowledgement of an invite.
type CreateUserResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// CompanyUpdate is a partial company-profile update; nil fields are
// untouched.
type CompanyUpdate struct {
	CompanyName        *string `json:"company_name,omitempty"`
	CompanyDescription *string `json:"company_description,omitempty"`
	Industry           *string `json:"industry,omitempty"`
	Website            *string `json:"website,omitempty"`
	LogoURL            *string `json:"logo_url,omitempty"`
}

// ExpenseBreakdown is spend grouped by category.
type ExpenseBreakdown struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// NamedValue is one labeled chart datum.
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// BurnRateMetrics are the computed burn-rate figures.
type BurnRateMetrics struct {
	TotalExpenses    float64            `json:"total_expenses"`
	TotalRevenue     float64            `json:"total_revenue"`
	NetBurn          float64            `json:"net_burn"`
	RunwayMonths     float64            `json:"runway_months"`
	EmployeeCount    int                `json:"employee_count"`
	BurnPerEmployee  float64            `json:"burn_per_employee"`
	ExpenseBreakdown []ExpenseBreakdown `json:"expense_breakdown"`
	RevenueVsExpense []NamedValue       `json:"revenue_vs_expense"`
}

// BurnRateAnalysis pairs the metrics with the model-written narrative.
type BurnRateAnalysis struct {
	Metrics    BurnRateMetrics `json:"metrics"`
	AIAnalysis string          `json:"ai_analysis"`
}

// DealStageStat is pipeline volume per stage.
type DealStageStat struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// UnitEconomicsMetrics are the computed SaaS unit-economics figures.
type UnitEconomicsMetrics struct {
	CAC                float64         `json:"cac"`
	LTV                float64         `json:"ltv"`
	LTVCACRatio        float64         `json:"ltv_cac_ratio"`
	PaybackMonths      float64         `json:"payback_months"`
	ARPU               float64         `json:"arpu"`
	GrossMargin        float64         `json:"gross_margin"`
	RevenuePerEmployee float64         `json:"revenue_per_employee"`
	TotalCustomers     int             `json:"total_customers"`
	ConversionRate     float64         `json:"conversion_rate"`
	TotalLeads         int             `json:"total_leads"`
	TotalDeals         int             `json:"total_deals"`
	PipelineValue      float64         `json:"pipeline_value"`
	DealStages         []DealStageStat `json:"deal_stages"`
}

// UnitEconomicsAnalysis pairs the metrics with the model-written
// narrative.
type UnitEconomicsAnalysis struct {
	Metrics    UnitEconomicsMetrics `json:"metrics"`
	AIAnalysis string               `json:"ai_analysis"`
}

// PitchSlide is one slide of a generated investor deck.
type PitchSlide struct {
	Slide   int    `json:"slide"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Visual  string `json:"visual"`
}
