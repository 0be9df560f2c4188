package domain

// Product is a catalog entry. Title, Price and Image are display attributes
// carried along with cart items but never interpreted by the cart.
type Product struct {
	ID    int64
	Title string
	Price Money
	Image string
}

// Stock is the available quantity of a product at the time it was fetched.
type Stock struct {
	ProductID int64
	Amount    int
}

// Listing joins a product with its current stock for the storefront page.
type Listing struct {
	Product   Product
	Available int
}
