package strategy_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"

	"go.llib.dev/patternkit/strategy"
)

func TestCart(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		out  = testcase.Let(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
		cart = testcase.Let(s, func(t *testcase.T) *strategy.Cart {
			return &strategy.Cart{Customer: "John Doe"}
		})
	)

	s.Then("prices accumulate into the total", func(t *testcase.T) {
		var total float64
		t.Random.Repeat(1, 5, func() {
			price := float64(t.Random.IntBetween(1, 100))
			cart.Get(t).Add(price)
			total += price
		})
		t.Must.Equal(total, cart.Get(t).Total())
	})

	s.Then("checkout without a method is an illegal state", func(t *testcase.T) {
		cart.Get(t).Add(100)
		_, err := cart.Get(t).Checkout(out.Get(t))
		t.Must.ErrorIs(strategy.ErrNoPaymentMethod, err)
		t.Must.Empty(out.Get(t).String())
	})

	s.Then("checkout dispatches to the chosen strategy", func(t *testcase.T) {
		cart.Get(t).Add(50)
		cart.Get(t).Add(25)
		cart.Get(t).Add(25)
		cart.Get(t).Use(strategy.CreditCard{})

		receipt, err := cart.Get(t).Checkout(out.Get(t))
		t.Must.NoError(err)
		t.Must.Equal(strategy.CreditCardName, receipt.Method)
		t.Must.Equal(100.0, receipt.Amount)
		t.Must.NotEqual(uuid.Nil, receipt.ID)
		t.Must.Contain(out.Get(t).String(), "Processing Credit Card Payment...")
		t.Must.Contain(out.Get(t).String(), "Paid $100.00 using Credit Card")
	})

	s.Then("the strategy can be swapped before checkout", func(t *testcase.T) {
		cart.Get(t).Add(250)
		cart.Get(t).Use(strategy.CreditCard{})
		cart.Get(t).Use(strategy.UPI{})

		receipt, err := cart.Get(t).Checkout(out.Get(t))
		t.Must.NoError(err)
		t.Must.Equal(strategy.UPIName, receipt.Method)
		t.Must.Contain(out.Get(t).String(), "Processing UPI Payment...")
		t.Must.NotContain(out.Get(t).String(), "Credit Card")
	})

	s.Then("every strategy narrates its own flow and settles the same total", func(t *testcase.T) {
		for _, m := range strategy.Methods() {
			var buf bytes.Buffer
			c := strategy.Cart{Customer: "John Doe"}
			c.Add(42)
			c.Use(m)
			receipt, err := c.Checkout(&buf)
			t.Must.NoError(err)
			t.Must.Equal(m.Name(), receipt.Method)
			t.Must.Equal(42.0, receipt.Amount)
			t.Must.Contain(buf.String(), "Step 1:")
			t.Must.Contain(buf.String(), "Paid $42.00 using")
		}
	})
}

func TestMethodFor(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Then("each registered name resolves to its strategy", func(t *testcase.T) {
		for _, m := range strategy.Methods() {
			got, err := strategy.MethodFor(m.Name())
			t.Must.NoError(err)
			t.Must.Equal(m.Name(), got.Name())
		}
	})

	s.Then("an unknown name is an illegal argument", func(t *testcase.T) {
		name := strategy.Name(t.Random.StringNC(8, random.CharsetDigit()))
		_, err := strategy.MethodFor(name)
		t.Must.ErrorIs(strategy.ErrUnknownMethod, err)
	})
}

func TestNaiveCart(t *testing.T) {
	var buf bytes.Buffer
	cart := strategy.NaiveCart{Customer: "John Doe"}
	cart.Add(100)
	cart.Add(150)

	require.NoError(t, cart.Checkout(&buf, "upi"))
	require.Contains(t, buf.String(), "Paid $250.00 using UPI")

	require.ErrorIs(t, cart.Checkout(&buf, "cheque"), strategy.ErrUnknownMethod)
}

func TestDemo(t *testing.T) {
	act := func(args ...string) *cli.ResponseRecorder {
		rr := &cli.ResponseRecorder{}
		cli.ServeCLI(strategy.Demo{}, rr, &cli.Request{Args: args})
		return rr
	}

	t.Run("default run pairs both renditions", func(t *testing.T) {
		rr := act()
		require.Equal(t, 0, rr.Code)
		out := rr.Out.String()
		require.Contains(t, out, "CHECKOUT, WITHOUT STRATEGY")
		require.Contains(t, out, "CHECKOUT, WITH STRATEGY")
		require.Contains(t, out, "Switching strategy at runtime")
		require.Equal(t, 2, strings.Count(out, "Paid $250.00 using UPI"))
	})

	t.Run("the first checkout follows the method flag", func(t *testing.T) {
		rr := act("-variant", "pattern", "-method", "wallet")
		require.Equal(t, 0, rr.Code)
		require.Contains(t, rr.Out.String(), "Paid $100.00 using Wallet")
	})

	t.Run("a method outside the enum is refused", func(t *testing.T) {
		rr := act("-method", "cheque")
		require.NotEqual(t, 0, rr.Code)
	})

	t.Run("an unknown method reaching the command reports the failure", func(t *testing.T) {
		rr := &cli.ResponseRecorder{}
		strategy.Demo{Variant: "pattern", Method: "cheque"}.ServeCLI(rr, &cli.Request{})
		require.Equal(t, cli.ExitCodeError, rr.Code)
		require.Contains(t, rr.Out.String(), "unknown-payment-method")
	})
}
