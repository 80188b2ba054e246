package app

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"reloved-market-client/internal/domain/category"
	"reloved-market-client/internal/domain/product"
	"reloved-market-client/internal/domain/shared"
	"reloved-market-client/internal/ports/outbound"
)

var errFakeTransport = errors.New("transport failure")

type listCall struct {
	token    string
	statuses []product.Status
	page     int
	size     int
}

type fakeGateway struct {
	mu sync.Mutex

	detail    *product.Detail
	detailErr error
	getTokens []string

	page    *outbound.ProductPage
	listErr error
	lists   []listCall

	searchPage *outbound.ProductPage
	searchErr  error
	searches   []outbound.SearchQuery

	categories    []*category.Category
	categoriesErr error

	subs    map[int64][]*category.SubCategory
	subsErr error

	commentErr   error
	commentForms []outbound.CommentForm

	submitMessage string
	submitErr     error
	submitForms   []outbound.ItemForm

	checkoutURL   string
	checkoutErr   error
	checkoutCalls int
}

var _ outbound.Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) GetItem(_ context.Context, _ uuid.UUID, token string) (*product.Detail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getTokens = append(f.getTokens, token)
	return f.detail, f.detailErr
}

func (f *fakeGateway) ListMyItems(_ context.Context, token string, statuses []product.Status, page, size int) (*outbound.ProductPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, listCall{token: token, statuses: append([]product.Status(nil), statuses...), page: page, size: size})
	return f.page, f.listErr
}

func (f *fakeGateway) SearchItems(_ context.Context, query outbound.SearchQuery) (*outbound.ProductPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, query)
	return f.searchPage, f.searchErr
}

func (f *fakeGateway) ListCategories(_ context.Context) ([]*category.Category, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeGateway) ListSubCategories(_ context.Context, categoryID int64) ([]*category.SubCategory, error) {
	return f.subs[categoryID], f.subsErr
}

func (f *fakeGateway) SubmitComment(_ context.Context, token string, form outbound.CommentForm) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commentForms = append(f.commentForms, form)
	return f.commentErr
}

func (f *fakeGateway) SubmitItem(_ context.Context, token string, form outbound.ItemForm) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitForms = append(f.submitForms, form)
	return f.submitMessage, f.submitErr
}

func (f *fakeGateway) FeatureItemCheckout(_ context.Context, token string, _ uuid.UUID) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checkoutCalls++
	return f.checkoutURL, f.checkoutErr
}

func (f *fakeGateway) commentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.commentForms)
}

func (f *fakeGateway) getCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.getTokens)
}

type fakeNavigator struct {
	mu        sync.Mutex
	routes    []string
	redirects []string
}

var _ outbound.Navigator = (*fakeNavigator)(nil)

func (f *fakeNavigator) Navigate(route string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes = append(f.routes, route)
}

func (f *fakeNavigator) Redirect(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.redirects = append(f.redirects, url)
}

type memStore struct {
	mu      sync.Mutex
	session shared.Session
	readErr error
}

var _ outbound.SessionStore = (*memStore)(nil)

func (m *memStore) ReadSession() (shared.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return shared.Anonymous(), m.readErr
	}
	return m.session, nil
}

func (m *memStore) WriteSession(session shared.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = session
	return nil
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = shared.Anonymous()
	return nil
}

func sessionContextWith(session shared.Session) *SessionContext {
	return NewSessionContext(SessionContextParams{Store: &memStore{session: session}})
}

func loggedInSession(userID int64, isVendor string) shared.Session {
	return shared.Session{
		IsLoggedIn: true,
		Token:      "test-token",
		User:       &shared.UserProfile{ID: userID, IsVendor: isVendor},
	}
}

func loadedDetail(ownerID int64, offer *product.Offer) *product.Detail {
	return &product.Detail{
		Item: &product.Product{
			ID:   41,
			UUID: uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2"),
			Name: "Vintage lamp",
			FeeBreakdown: product.FeeBreakdown{
				Price:              1200,
				BuyerProtectionFee: 50,
				Total:              1250,
			},
			Price:    1200,
			TotalFee: 1250,
			Address:  `[{"name":"pin"},{"name":"Dubai Marina"}]`,
			MyOffer: offer,
			User:    &shared.UserProfile{ID: ownerID},
		},
	}
}
