package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"pabw/internal/delivery/api/response"
	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"
	"pabw/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// AccountForm is the admin's create form.
type AccountForm struct {
	Email           string      `json:"email" form:"email" validate:"required,email"`
	Role            entity.Role `json:"role" form:"role"`
	Password        string      `json:"password" form:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string      `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=Password"`
}

// AccountEditForm is the admin's edit form. Empty passwords keep the old one.
type AccountEditForm struct {
	Email           string      `json:"email" form:"email" validate:"required,email"`
	Role            entity.Role `json:"role" form:"role" validate:"required,oneof=Customer Courier"`
	Password        string      `json:"password" form:"password" validate:"omitempty,min=8,max=64"`
	ConfirmPassword string      `json:"confirm_password" form:"confirm_password" validate:"eqfield=Password"`
}

// accountUpdate is the body of PUT /account/:id; a null password is kept.
type accountUpdate struct {
	Email           string      `json:"email"`
	Role            entity.Role `json:"role"`
	Password        *string     `json:"password"`
	ConfirmPassword *string     `json:"confirm_password"`
}

// BalanceForm tops up an account. Amounts may carry a fraction, like the
// balances they are added to.
type BalanceForm struct {
	Amount decimal.Decimal `json:"amount" form:"amount"`
}

type accountList struct {
	Accounts []entity.Profile `json:"accounts"`
}

// AccountHandler serves the admin's customer and courier pages. Each
// handler is bound to the role its route family manages.
type AccountHandler struct {
	resources usecase.ResourceCache
	actions   usecase.ActionUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(resources usecase.ResourceCache, actions usecase.ActionUsecase) *AccountHandler {
	return &AccountHandler{resources: resources, actions: actions}
}

// AccountPath is the page of role's accounts.
func AccountPath(role entity.Role) string {
	return "/admin/account/" + strings.ToLower(role.String())
}

// List shows the accounts of role.
func (h *AccountHandler) List(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		ref := entity.Ref(entity.ResourceAccount)

		res, err := h.resources.Load(c.Request().Context(), ref)
		if err != nil {
			return errors.Wrapf(err, "load %s", ref.Endpoint())
		}

		var all accountList
		if res.HasData() {
			if err := json.Unmarshal(res.Data, &all); err != nil {
				return errors.Wrap(err, "decode account list")
			}
		}

		accounts := make([]entity.Profile, 0, len(all.Accounts))
		for _, account := range all.Accounts {
			if account.Role == role {
				accounts = append(accounts, account)
			}
		}

		return response.Success(c, http.StatusOK, accounts)
	}
}

// Detail shows one account.
func (h *AccountHandler) Detail(c echo.Context) error {
	return loadPage(c, h.resources, entity.Ref(entity.ResourceAccount, c.Param("id")))
}

// CreatePage renders an empty account form for role.
func (h *AccountHandler) CreatePage(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		return response.Success(c, http.StatusOK, AccountForm{Role: role})
	}
}

// Create adds an account of role.
func (h *AccountHandler) Create(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form AccountForm
		if err := bindForm(c, &form); err != nil {
			return err
		}
		form.Role = role

		data, err := h.actions.Submit(c.Request().Context(), entity.Action{
			Method:      http.MethodPost,
			Endpoint:    entity.Ref(entity.ResourceAccount).Endpoint() + "/",
			Body:        form,
			Invalidates: []entity.ResourceRef{entity.Ref(entity.ResourceAccount)},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		location := AccountPath(role)
		if id := idOf(data); id != "" {
			location += "/" + id
		}

		return response.SuccessWithMessage(c, http.StatusCreated, Completed{Data: data, Location: location}, "Account created")
	}
}

// Update edits an account. The role may change, which moves the account to
// the other list.
func (h *AccountHandler) Update(c echo.Context) error {
	var form AccountEditForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	body := accountUpdate{Email: form.Email, Role: form.Role}
	if form.Password != "" {
		body.Password, body.ConfirmPassword = &form.Password, &form.ConfirmPassword
	}

	ref := entity.Ref(entity.ResourceAccount, c.Param("id"))

	return submit(c, h.actions, entity.Action{
		Method:      http.MethodPut,
		Endpoint:    ref.Endpoint(),
		Body:        body,
		Invalidates: []entity.ResourceRef{entity.Ref(entity.ResourceAccount), ref},
	}, "Account updated", AccountPath(form.Role)+"/"+ref.ID)
}

// TopUp adds to an account's balance.
func (h *AccountHandler) TopUp(c echo.Context) error {
	var form BalanceForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	if !form.Amount.IsPositive() {
		return domainerrors.NewValidationError("amount", "must be greater than 0")
	}

	ctx := c.Request().Context()
	ref := entity.Ref(entity.ResourceAccount, c.Param("id"))

	res, err := h.resources.Load(ctx, ref)
	if err != nil {
		return errors.Wrapf(err, "load %s", ref.Endpoint())
	}

	var account entity.Profile
	if err := json.Unmarshal(res.Data, &account); err != nil {
		return errors.Wrap(err, "decode account")
	}

	current := decimal.Zero
	if account.Balance != "" {
		current, err = decimal.NewFromString(account.Balance)
		if err != nil {
			return errors.Wrapf(err, "parse balance of %s", ref.Endpoint())
		}
	}

	// The backend reads balances as decimal strings.
	return submit(c, h.actions, entity.Action{
		Method:      http.MethodPut,
		Endpoint:    ref.Endpoint(),
		Body:        map[string]string{"balance": current.Add(form.Amount).String()},
		Invalidates: []entity.ResourceRef{entity.Ref(entity.ResourceAccount), ref},
	}, "Balance updated", "")
}

// Delete removes an account of role.
func (h *AccountHandler) Delete(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		ref := entity.Ref(entity.ResourceAccount, c.Param("id"))

		return submit(c, h.actions, entity.Action{
			Method:      http.MethodDelete,
			Endpoint:    ref.Endpoint(),
			Invalidates: []entity.ResourceRef{entity.Ref(entity.ResourceAccount), ref},
		}, "Account deleted", AccountPath(role))
	}
}
