package model

// ProductTest is a product-test record served by /products-tests.
type ProductTest struct {
	ID             string       `json:"id"`
	TesterID       string       `json:"testerId"`
	ProductID      string       `json:"productId"`
	Reaction       string       `json:"reaction"`
	Rating         int          `json:"rating"`
	SurvivalStatus bool         `json:"survival_status"`
	Tester         *TestSubject `json:"tester,omitempty"`
	Product        *TestProduct `json:"product,omitempty"`
}

// TestSubject is the tester summary embedded in a ProductTest.
type TestSubject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TestProduct is the product summary embedded in a ProductTest.
type TestProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// TesterName returns the embedded tester's name or the raw tester id.
func (t ProductTest) TesterName() string {
	if t.Tester != nil && t.Tester.Name != "" {
		return t.Tester.Name
	}
	return t.TesterID
}

// ProductName returns the embedded product's name or the raw product id.
func (t ProductTest) ProductName() string {
	if t.Product != nil && t.Product.Name != "" {
		return t.Product.Name
	}
	return t.ProductID
}

// ProductTestInput is the body of POST and PATCH /products-tests.
type ProductTestInput struct {
	TesterID       string `json:"testerId"`
	ProductID      string `json:"productId"`
	Reaction       string `json:"reaction"`
	Rating         int    `json:"rating"`
	SurvivalStatus bool   `json:"survival_status"`
}

// Rating bounds for product tests.
const (
	MinRating = 1
	MaxRating = 10
)
