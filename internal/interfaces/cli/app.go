// internal/interfaces/cli/app.go
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/api"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/config"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/auth"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/cart"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/payment"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/product"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/infrastructure/storage"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/session"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/state"
	"github.com/sirupsen/logrus"
)

// App wires the storefront client together and dispatches commands. Each
// command is a thin view over the session and resource stores: render state,
// issue intents, print errors inline and stay usable.
type App struct {
	cfg    *config.Config
	logger *logrus.Logger
	out    io.Writer

	session  *session.Store
	products *product.Service
	carts    *cart.Service
	payments *payment.Service
}

// NewApp builds the application from configuration
func NewApp(cfg *config.Config, records storage.Store, logger *logrus.Logger, out io.Writer) *App {
	client := api.NewClient(cfg, logger)

	app := &App{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		products: product.NewService(client, logger),
		carts:    cart.NewService(client, logger),
	}

	navigate := func(route string) {
		fmt.Fprintf(out, "→ %s\n", route)
	}
	app.session = session.NewStore(auth.NewService(client, logger), records, navigate, logger)
	app.payments = payment.NewService(cfg, payment.NewMockGateway(logger), logger)
	return app
}

// Run executes one command. Usage mistakes return an error; operational
// failures are rendered inline and leave the app usable.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printHelp()
		return nil
	}

	command, rest := args[0], args[1:]
	switch command {
	case "login":
		return a.runLogin(ctx, rest)
	case "signup":
		return a.runSignup(ctx, rest)
	case "logout":
		a.session.Logout()
		fmt.Fprintln(a.out, "Logged out")
		return nil
	case "me":
		return a.runProfile()
	case "search":
		return a.runSearch(ctx, rest)
	case "like":
		return a.runLike(ctx, rest)
	case "liked":
		return a.runLiked(ctx)
	case "unlike":
		return a.runUnlike(ctx, rest)
	case "cart":
		return a.runCart(ctx)
	case "pay":
		return a.runPay(rest)
	case "help":
		a.printHelp()
		return nil
	default:
		a.printHelp()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *App) runLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}

	credentials := auth.LoginCredentials{Email: args[0], Password: args[1]}
	response, err := a.session.Login(ctx, credentials)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", a.session.Err())
		return nil
	}

	fmt.Fprintf(a.out, "Welcome back, %s\n", response.User.Name)
	return nil
}

func (a *App) runSignup(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: signup <fullname> <email> <phone> <password>")
	}

	credentials := auth.SignupCredentials{
		Fullname: args[0],
		Email:    args[1],
		Phone:    args[2],
		Password: args[3],
	}
	response, err := a.session.Signup(ctx, credentials)
	if err != nil {
		fmt.Fprintf(a.out, "Signup failed: %s\n", a.session.Err())
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", response.User.Name)
	return nil
}

func (a *App) runProfile() error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	renderUser(a.out, user)
	if expiry, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(a.out, "Session token expires %s\n", expiry.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) runSearch(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")

	store := state.NewSearchStore(a.products, a.session, a.logger)
	if err := store.SetQuery(ctx, query); err != nil {
		fmt.Fprintf(a.out, "Search failed: %s\n", store.Err())
		return nil
	}

	results := store.Results()
	if len(results) == 0 {
		fmt.Fprintln(a.out, "No products found")
		return nil
	}
	for _, p := range results {
		renderProduct(a.out, p)
	}
	return nil
}

func (a *App) runLike(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: like <query> <productId>")
	}
	query, productID := args[0], args[1]

	store := state.NewSearchStore(a.products, a.session, a.logger)
	if err := store.SetQuery(ctx, query); err != nil {
		fmt.Fprintf(a.out, "Search failed: %s\n", store.Err())
		return nil
	}

	var target *product.Product
	for _, p := range store.Results() {
		if p.ProductID == productID {
			target = &p
			break
		}
	}
	if target == nil {
		fmt.Fprintf(a.out, "Product %s not in results for %q\n", productID, query)
		return nil
	}

	like := state.NewLikeState(*target, a.products, a.session, a.logger)
	liked, err := like.Toggle(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Like failed: %s\n", like.Err())
		return nil
	}

	// Mirror the confirmed toggle into the result list, the way the search
	// page updates its cards.
	store.ApplyLikeToggle(productID, liked)
	if liked {
		fmt.Fprintf(a.out, "Liked %s (%d likes)\n", target.ProductName, like.LikeCount())
	} else {
		fmt.Fprintf(a.out, "Unliked %s (%d likes)\n", target.ProductName, like.LikeCount())
	}
	return nil
}

func (a *App) runLiked(ctx context.Context) error {
	store := state.NewLikedStore(a.products, a.session, a.logger)
	if err := store.Fetch(ctx); err != nil {
		fmt.Fprintf(a.out, "%s\n", store.Err())
		return nil
	}

	products := store.Products()
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No liked products yet")
		return nil
	}
	for _, p := range products {
		renderLikedProduct(a.out, p)
	}
	return nil
}

func (a *App) runUnlike(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: unlike <productId>")
	}

	store := state.NewLikedStore(a.products, a.session, a.logger)
	if err := store.Fetch(ctx); err != nil {
		fmt.Fprintf(a.out, "%s\n", store.Err())
		return nil
	}
	if err := store.Unlike(ctx, args[0]); err != nil {
		fmt.Fprintf(a.out, "Unlike failed: %s\n", store.Err())
		return nil
	}

	fmt.Fprintf(a.out, "Removed. %d liked products remain\n", len(store.Products()))
	return nil
}

func (a *App) runCart(ctx context.Context) error {
	store := state.NewCartStore(a.carts, a.session, a.logger)
	if _, err := store.Fetch(ctx); err != nil {
		fmt.Fprintf(a.out, "%s\n", store.Err())
		return nil
	}

	renderCart(a.out, store.Cart())
	return nil
}

func (a *App) runPay(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pay <amount>")
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	paymentID, err := a.payments.StartPayment(amount, a.session.User())
	if err != nil {
		fmt.Fprintf(a.out, "Payment failed: %v\n", err)
		return nil
	}

	fmt.Fprintf(a.out, "Payment successful! Payment ID: %s\n", paymentID)
	return nil
}

func (a *App) printHelp() {
	fmt.Fprintf(a.out, `%s v%s

Commands:
  login <email> <password>              Sign in
  signup <fullname> <email> <phone> <password>
  logout                                Sign out
  me                                    Show profile
  search <query>                        Search products
  like <query> <productId>              Toggle like on a search result
  liked                                 List liked products
  unlike <productId>                    Remove a liked product
  cart                                  Show the cart
  pay <amount>                          Trigger the mock checkout
`, a.cfg.App.Name, a.cfg.App.Version)
}
