package app

import "github.com/google/uuid"

// Client-side routes the views navigate between
const (
	RouteHome             = "/"
	RouteShop             = "/shop"
	RouteLogin            = "/login"
	RouteAddProduct       = "/add-product"
	RouteAddVendorProfile = "/add-vendor-profile"
	RouteMyProfile        = "/my-profile"
	RouteProductDetails   = "/product-details"
	RouteEditProduct      = "/edit-product"
)

// EditProductRoute returns the edit route for one listing
func EditProductRoute(id uuid.UUID) string {
	return RouteEditProduct + "/" + id.String()
}

// ProductDetailsRoute returns the detail route for one listing
func ProductDetailsRoute(id uuid.UUID) string {
	return RouteProductDetails + "/" + id.String()
}
