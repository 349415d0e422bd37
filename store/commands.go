package store

import "restaurant-foh/statemachine"

func commandName(cmd statemachine.Command) string {
	switch cmd.(type) {
	case statemachine.AddItem:
		return "add_item"
	case statemachine.RemoveItem:
		return "remove_item"
	case statemachine.SetQuantity:
		return "set_quantity"
	case statemachine.AddTip:
		return "add_tip"
	case statemachine.AddTipPercent:
		return "add_tip_percent"
	case statemachine.SetTable:
		return "set_table"
	case statemachine.ConfirmOrder:
		return "confirm_order"
	case statemachine.ClearOrder:
		return "clear_order"
	case statemachine.ToggleCart:
		return "toggle_cart"
	case statemachine.UpdateOrderStatus:
		return "update_order_status"
	case statemachine.UpdateItemAvailability:
		return "update_item_availability"
	}
	return "unknown"
}
