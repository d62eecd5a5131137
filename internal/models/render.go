package models

// Variant selects how a render instruction is styled.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

// RenderInstruction is what a presenter is asked to show in one region:
// a message, a list of lines, or customer cards.
type RenderInstruction struct {
	Variant Variant        `json:"variant"`
	Message string         `json:"message,omitempty"`
	Heading string         `json:"heading,omitempty"`
	Lines   []string       `json:"lines,omitempty"`
	Cards   []CustomerCard `json:"cards,omitempty"`
	Token   uint64         `json:"token,omitempty"`
}

// CustomerCard is the display form of a CustomerRecord.
type CustomerCard struct {
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	PurchasesHeading string         `json:"purchases_heading,omitempty"`
	Purchases        []PurchaseCard `json:"purchases,omitempty"`
	NoPurchasesLabel string         `json:"no_purchases_label,omitempty"`
}

type PurchaseCard struct {
	PurchaseID string `json:"purchase_id"`
	TotalPrice string `json:"total_price"`
}

func Success(message string) RenderInstruction {
	return RenderInstruction{Variant: VariantSuccess, Message: message}
}

func Failure(message string) RenderInstruction {
	return RenderInstruction{Variant: VariantError, Message: message}
}

func Info(message string) RenderInstruction {
	return RenderInstruction{Variant: VariantInfo, Message: message}
}

// List renders lines under an optional heading.
func List(heading string, lines []string) RenderInstruction {
	return RenderInstruction{Variant: VariantInfo, Heading: heading, Lines: lines}
}

// WithToken stamps the instruction with the lookup token it belongs to.
func (r RenderInstruction) WithToken(token uint64) RenderInstruction {
	r.Token = token
	return r
}

func (r RenderInstruction) IsZero() bool {
	return r.Variant == "" && r.Message == "" && r.Heading == "" && len(r.Lines) == 0 && len(r.Cards) == 0
}
