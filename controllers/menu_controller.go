package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/models"
)

// viewMenu prints the full menu grouped by category, then offers the
// filter/sort submenu. Every filter re-issues a fresh query.
func (s *Session) viewMenu() {
	fmt.Fprintln(s.out, "[---Menu---]")
	fmt.Fprintln(s.out)
	s.printFullMenu()

	for !s.eof {
		fmt.Fprintln(s.out, "Filter Search By: ")
		fmt.Fprintln(s.out, "1. Drinks")
		fmt.Fprintln(s.out, "2. Sides")
		fmt.Fprintln(s.out, "3. Entree")
		fmt.Fprintln(s.out, "4. Food Items under a Certain Price")
		fmt.Fprintln(s.out, "5. Sort Menu Highest to Lowest Price")
		fmt.Fprintln(s.out, "6. Sort Menu Lowest to Highest Price")
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Back To Menu: ")
		fmt.Fprintln(s.out, "8. Back to Menu")
		fmt.Fprintln(s.out, "9. Main Menu")
		fmt.Fprintln(s.out)

		switch s.readChoice() {
		case 1:
			s.printCategory(models.CategoryDrinks)
		case 2:
			s.printCategory(models.CategorySides)
		case 3:
			s.printCategory(models.CategoryEntree)
		case 4:
			line, ok := s.readLine("Enter a price $ ")
			if !ok {
				return
			}
			maxPrice, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
			if err != nil {
				fmt.Fprintln(s.out, "Your input is invalid!")
				continue
			}
			for _, category := range models.Categories {
				fmt.Fprintf(s.out, "[---%s---]\n", category)
				items, err := s.menu.ItemsByCategoryUnderPrice(category, maxPrice)
				if err != nil {
					fmt.Fprintln(s.out, err)
					break
				}
				s.printItems(items)
				fmt.Fprintln(s.out)
			}
		case 5:
			s.printSortedMenu(false)
		case 6:
			s.printSortedMenu(true)
		case 8:
			s.printFullMenu()
		case 9:
			return
		}
	}
}

func (s *Session) printFullMenu() {
	for _, category := range models.Categories {
		fmt.Fprintf(s.out, "[---%s---]\n", category)
		items, err := s.menu.ItemsByCategory(category)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		s.printItems(items)
		fmt.Fprintln(s.out)
	}
}

func (s *Session) printCategory(category string) {
	items, err := s.menu.ItemsByCategory(category)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	s.printItems(items)
}

func (s *Session) printSortedMenu(ascending bool) {
	for _, category := range models.Categories {
		fmt.Fprintf(s.out, "[---%s---]\n", category)
		items, err := s.menu.ItemsByCategorySorted(category, ascending)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		s.printItems(items)
		fmt.Fprintln(s.out)
	}
}

func (s *Session) printItems(items []models.Item) {
	for _, item := range items {
		fmt.Fprintf(s.out, "%s------------------------$%g\n", item.ItemName, item.Price)
	}
}

// updateMenu is the manager-only catalog maintenance menu: edit an
// existing item or add a new one.
func (s *Session) updateMenu() {
	role, err := s.accounts.Role(s.login)
	if err != nil || role != models.RoleManager {
		fmt.Fprintln(s.out, "Access Denied. Only managers can update the Menu.")
		return
	}

	fmt.Fprintln(s.out, "Select the following options")
	fmt.Fprintln(s.out, "1. Update Item")
	fmt.Fprintln(s.out, "2. Add new item to menu")
	fmt.Fprintln(s.out, "3. Go to Main Menu")

	switch s.readChoice() {
	case 1:
		s.updateItem()
	case 2:
		s.addItem()
	case 3:
		return
	}
}

func (s *Session) updateItem() {
	name, ok := s.readLine("Enter an item name: ")
	if !ok {
		return
	}
	item, err := s.menu.GetItem(name)
	if err != nil {
		fmt.Fprintln(s.out, "Item Not Found")
		return
	}

	fmt.Fprintln(s.out, "Item:", item.ItemName)
	fmt.Fprintln(s.out, "ingredients:", item.Ingredients)
	fmt.Fprintln(s.out, "Type of item:", item.TypeOfItem)
	fmt.Fprintln(s.out, "price:", item.Price)
	fmt.Fprintln(s.out, "Description:", item.Description)
	fmt.Fprintln(s.out, "Selection option: Item (1), ingredients (2), Type (3), Price (4), Description (5)")

	switch s.readChoice() {
	case 1:
		newName, ok := s.readLine("Rename Item: ")
		if !ok {
			return
		}
		if err := s.menu.RenameItem(s.login, name, newName); err != nil {
			fmt.Fprintln(s.out, err)
		}
	case 2:
		ingredients, ok := s.readLine("ingredients: ")
		if !ok {
			return
		}
		if err := s.menu.UpdateIngredients(s.login, name, ingredients); err != nil {
			fmt.Fprintln(s.out, err)
		}
	case 3:
		category, ok := s.readLine("Type of Item: ")
		if !ok {
			return
		}
		if err := s.menu.UpdateCategory(s.login, name, category); err != nil {
			fmt.Fprintln(s.out, err)
		}
	case 4:
		line, ok := s.readLine("Edit Price: ")
		if !ok {
			return
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			fmt.Fprintln(s.out, "Your input is invalid!")
			return
		}
		if err := s.menu.UpdatePrice(s.login, name, price); err != nil {
			fmt.Fprintln(s.out, err)
		}
	case 5:
		description, ok := s.readLine("Enter Description of item: ")
		if !ok {
			return
		}
		if err := s.menu.UpdateDescription(s.login, name, description); err != nil {
			fmt.Fprintln(s.out, err)
		}
	}
}

func (s *Session) addItem() {
	name, ok := s.readLine("Name of Item: ")
	if !ok {
		return
	}
	ingredients, ok := s.readLine("Enter ingredients: ")
	if !ok {
		return
	}
	category, ok := s.readLine("Enter type of item: ")
	if !ok {
		return
	}
	line, ok := s.readLine("Enter Price: ")
	if !ok {
		return
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		fmt.Fprintln(s.out, "Your input is invalid!")
		return
	}
	description, ok := s.readLine("Enter Description: ")
	if !ok {
		return
	}

	item := models.Item{
		ItemName:    name,
		Ingredients: ingredients,
		TypeOfItem:  category,
		Price:       price,
		Description: description,
	}
	if err := s.menu.AddItem(s.login, item); err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintln(s.out, "Added new item to data base")
}
