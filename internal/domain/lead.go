package domain

// Lead is one customer job order as stored in the document store.
type Lead struct {
	ID           string   `json:"id"`
	JONumber     *int     `json:"joNumber,omitempty"`
	CustomerName string   `json:"customerName"`
	OrderType    string   `json:"orderType"`
	PriorityType string   `json:"priorityType"`
	City         string   `json:"city,omitempty"`
	GrandTotal   *float64 `json:"grandTotal,omitempty"`

	SalesRepresentative string  `json:"salesRepresentative"`
	AssignedDigitizer   *string `json:"assignedDigitizer,omitempty"`

	SubmissionDateTime    string  `json:"submissionDateTime"`
	FinalProgramTimestamp *string `json:"finalProgramTimestamp,omitempty"`

	IsUnderProgramming   bool `json:"isUnderProgramming"`
	IsInitialApproval    bool `json:"isInitialApproval"`
	IsLogoTesting        bool `json:"isLogoTesting"`
	IsRevision           bool `json:"isRevision"`
	IsFinalApproval      bool `json:"isFinalApproval"`
	IsFinalProgram       bool `json:"isFinalProgram"`
	IsDigitizingArchived bool `json:"isDigitizingArchived"`

	UnderProgrammingTimestamp   *string `json:"underProgrammingTimestamp,omitempty"`
	InitialApprovalTimestamp    *string `json:"initialApprovalTimestamp,omitempty"`
	LogoTestingTimestamp        *string `json:"logoTestingTimestamp,omitempty"`
	RevisionTimestamp           *string `json:"revisionTimestamp,omitempty"`
	FinalApprovalTimestamp      *string `json:"finalApprovalTimestamp,omitempty"`
	DigitizingArchivedTimestamp *string `json:"digitizingArchivedTimestamp,omitempty"`

	Orders  []OrderLine `json:"orders"`
	Layouts []Layout    `json:"layouts"`
}

type OrderLine struct {
	ProductType string `json:"productType"`
	Quantity    int    `json:"quantity"`
}

const (
	PriorityRush    = "Rush"
	PriorityRegular = "Regular"
)

// ProductPatches lines never count toward sold quantities.
const ProductPatches = "Patches"

var programmingSkipTypes = map[string]struct{}{
	"Stock (Jacket Only)": {},
	"Item Sample":         {},
	"Stock Design":        {},
}

// SkipsProgramming reports whether the order type never goes through digitizing.
func SkipsProgramming(orderType string) bool {
	_, ok := programmingSkipTypes[orderType]
	return ok
}

// InProgrammingQueue is true when the lead has a J.O. number, has not
// received its final program and its order type is digitized at all.
func (l Lead) InProgrammingQueue() bool {
	return l.JONumber != nil && !l.IsFinalProgram && !SkipsProgramming(l.OrderType)
}

// Amount returns grandTotal, zero when absent.
func (l Lead) Amount() float64 {
	if l.GrandTotal == nil {
		return 0
	}
	return *l.GrandTotal
}

// Priority returns priorityType, Regular when absent.
func (l Lead) Priority() string {
	if l.PriorityType == "" {
		return PriorityRegular
	}
	return l.PriorityType
}

// DigitizerName returns the assigned digitizer or "Unassigned".
func (l Lead) DigitizerName() string {
	if l.AssignedDigitizer == nil || *l.AssignedDigitizer == "" {
		return Unassigned
	}
	return *l.AssignedDigitizer
}

const Unassigned = "Unassigned"

// SoldQuantity sums order lines, excluding Patches.
func (l Lead) SoldQuantity() int {
	total := 0
	for _, o := range l.Orders {
		if o.ProductType == ProductPatches {
			continue
		}
		total += o.Quantity
	}
	return total
}
