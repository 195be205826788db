// Dispatch table: one arm per operation in the public contract. Argument
// shapes are small named-field objects; unknown methods and undecodable
// arguments report InvalidPayload.
package server

import (
	"encoding/json"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// idArgs carries operations keyed by a single identifier.
type idArgs struct {
	ID string `json:"id"`
}

// customerScopedArgs carries the compound add operations.
type customerScopedArgs[P any] struct {
	CustomerID string `json:"customer_id"`
	Payload    P      `json:"payload"`
}

// dispatch routes a method name to the corresponding service operation.
func (s *Server) dispatch(method string, args json.RawMessage) (any, error) {
	switch method {
	case "listCustomers":
		return s.svc.ListCustomers()

	case "getCustomer":
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.GetCustomer(a.ID)

	case "addCustomer":
		var a struct {
			Payload types.CustomerPayload `json:"payload"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.AddCustomer(a.Payload)

	case "updateCustomer":
		var a struct {
			Customer types.Customer `json:"customer"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.UpdateCustomer(&a.Customer)

	case "deleteCustomer":
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.DeleteCustomer(a.ID)

	case "addInteraction":
		var a customerScopedArgs[types.InteractionPayload]
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.AddInteraction(a.CustomerID, a.Payload)

	case "listCustomerInteractions":
		var a struct {
			CustomerID string `json:"customer_id"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.ListCustomerInteractions(a.CustomerID), nil

	case "getInteraction":
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.GetInteraction(a.ID)

	case "updateInteraction":
		var a struct {
			Interaction types.Interaction `json:"interaction"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.UpdateInteraction(&a.Interaction)

	case "deleteInteraction":
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.DeleteInteraction(a.ID)

	case "addPurchase":
		var a customerScopedArgs[types.PurchasePayload]
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.AddPurchase(a.CustomerID, a.Payload)

	case "listCustomerPurchases":
		var a struct {
			CustomerID string `json:"customer_id"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.ListCustomerPurchases(a.CustomerID), nil

	case "getPurchase":
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.GetPurchase(a.ID)

	case "updatePurchase":
		var a struct {
			Purchase types.Purchase `json:"purchase"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.UpdatePurchase(&a.Purchase)

	case "deletePurchase":
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.DeletePurchase(a.ID)

	case "filterByStatus":
		var a struct {
			Status string `json:"status"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.FilterByStatus(a.Status)

	case "getPurchasesByDate":
		var a struct {
			Date string `json:"date"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return s.svc.PurchasesByDate(a.Date)

	default:
		return nil, types.NewInvalidPayloadError("unknown method %q", method)
	}
}

// decodeArgs unmarshals the args object. Absent args decode every field to
// its zero value, which the service layer then judges; syntactically broken
// args report InvalidPayload here.
func decodeArgs(args json.RawMessage, into any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, into); err != nil {
		return types.NewInvalidPayloadError("undecodable args: %v", err)
	}
	return nil
}
