package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/cory-johannsen/highwizardry/internal/game/property"
	"github.com/cory-johannsen/highwizardry/internal/game/session"
)

func (g *Game) weaponShop() {
	for {
		g.printf("\n--- WEAPON SHOP ---\n")
		for i, w := range g.content.Weapons {
			g.printf("%d. %s - %d pennies (damage %d", i+1, w.Name, w.Price, w.Damage)
			if w.IsMagical() {
				g.printf(", mana cost %d", w.ManaCost)
			}
			g.printf(")\n")
		}

		choice, ok := g.prompt("\nSelect weapon to buy (0 to exit): ")
		if !ok || choice == "0" {
			return
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(g.content.Weapons) {
			g.printf("\nInvalid choice.\n")
			continue
		}

		w := g.content.Weapons[idx-1]
		old := g.sess.Char.Weapon
		if err := g.sess.BuyWeapon(w); err != nil {
			if errors.Is(err, session.ErrInsufficientFunds) {
				g.printf("\nNot enough money. Need %d pennies, have %s.\n", w.Price, g.sess.Char.Purse.Format())
			} else {
				g.printf("\nPurchase failed: %v\n", err)
			}
			continue
		}
		g.printf("\nYou bought the %s.\n", w.Name)
		if old != nil {
			g.printf("Traded in the %s for %d pennies.\n", old.Name, old.TradeInValue())
		}
	}
}

func (g *Game) armorShop() {
	for {
		g.printf("\n--- ARMOR SHOP ---\n")
		for i, a := range g.content.Armors {
			g.printf("%d. %s - %d pennies (defense %d)\n", i+1, a.Name, a.Price, a.Defense)
		}

		choice, ok := g.prompt("\nSelect armor to buy (0 to exit): ")
		if !ok || choice == "0" {
			return
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(g.content.Armors) {
			g.printf("\nInvalid choice.\n")
			continue
		}

		a := g.content.Armors[idx-1]
		old := g.sess.Char.Armor
		if err := g.sess.BuyArmor(a); err != nil {
			if errors.Is(err, session.ErrInsufficientFunds) {
				g.printf("\nNot enough money. Need %d pennies, have %s.\n", a.Price, g.sess.Char.Purse.Format())
			} else {
				g.printf("\nPurchase failed: %v\n", err)
			}
			continue
		}
		g.printf("\nYou bought the %s.\n", a.Name)
		if old != nil {
			g.printf("Traded in the %s for %d pennies.\n", old.Name, old.TradeInValue())
		}
	}
}

func (g *Game) gym() {
	for {
		mult := g.sess.Char.TrainingMultiplier()
		g.printf("\n--- TRAINING GYM ---\n")
		g.printf("Training multiplier: %.2fx (happiness %d/%d)\n",
			mult, g.sess.Char.Happiness, g.sess.Char.MaxHappiness)
		g.printf("1. Train Strength (%d pennies)\n", session.TrainingCost)
		g.printf("2. Train Agility (%d pennies)\n", session.TrainingCost)
		g.printf("3. Train Vitality (%d pennies)\n", session.TrainingCost)
		g.printf("4. Intensive Training, all stats (%d pennies)\n", session.IntensiveTrainingCost)

		choice, ok := g.prompt("\nWhat would you like to train? (0 to exit): ")
		if !ok || choice == "0" {
			return
		}

		var err error
		switch choice {
		case "1":
			err = g.sess.Train(session.StatStrength)
		case "2":
			err = g.sess.Train(session.StatAgility)
		case "3":
			err = g.sess.Train(session.StatVitality)
		case "4":
			err = g.sess.TrainIntensive()
		default:
			g.printf("\nInvalid choice.\n")
			continue
		}

		if err != nil {
			if errors.Is(err, session.ErrInsufficientFunds) {
				g.printf("\nNot enough money for training. Purse: %s.\n", g.sess.Char.Purse.Format())
			} else {
				g.printf("\nTraining failed: %v\n", err)
			}
			continue
		}
		g.printf("\nTraining complete. STR %d / AGI %d / VIT %d.\n",
			g.sess.Char.Strength, g.sess.Char.Agility, g.sess.Char.Vitality)
	}
}

func (g *Game) propertyOffice() {
	for {
		listings := g.propertyListings()
		g.printf("\n--- PROPERTY OFFICE ---\n")
		for i, p := range listings {
			status := "for sale"
			if p.Owned {
				status = "owned"
			}
			g.printf("%d. %s - %d pennies (%s, happiness +%d, %d/%d upgrades)\n",
				i+1, p.Name, p.BasePrice, status, p.TotalHappiness(), len(p.Upgrades), p.UpgradeCapacity)
		}

		choice, ok := g.prompt("\nSelect property (0 to exit): ")
		if !ok || choice == "0" {
			return
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(listings) {
			g.printf("\nInvalid choice.\n")
			continue
		}
		g.propertyMenu(listings[idx-1])
	}
}

// propertyListings merges catalog entries with the character's owned
// holdings, preferring the owned instance when names collide.
func (g *Game) propertyListings() []*property.Property {
	listings := make([]*property.Property, 0, len(g.content.Properties))
	for _, cat := range g.content.Properties {
		owned := false
		for _, p := range g.sess.Char.Properties {
			if p.Name == cat.Name {
				listings = append(listings, p)
				owned = true
				break
			}
		}
		if !owned {
			listings = append(listings, cat)
		}
	}
	return listings
}

func (g *Game) propertyMenu(p *property.Property) {
	for {
		g.printf("\n--- %s ---\n", p.Name)
		g.printf("%s\n", p.Description)
		if p.Owned {
			g.printf("1. Sell\n")
			g.printf("2. Buy Upgrade\n")
			g.printf("3. List for Sale\n")
			g.printf("4. List for Rent\n")
			g.printf("5. Delist\n")
		} else {
			g.printf("1. Buy (%d pennies)\n", p.BasePrice)
		}

		choice, ok := g.prompt("\nSelect option (0 to exit): ")
		if !ok || choice == "0" {
			return
		}

		switch {
		case choice == "1" && !p.Owned:
			if err := g.sess.BuyProperty(p); err != nil {
				g.reportPropertyError(err)
				continue
			}
			g.printf("\nYou now own %s. Happiness: %d/%d.\n",
				p.Name, g.sess.Char.Happiness, g.sess.Char.MaxHappiness)
			return
		case choice == "1" && p.Owned:
			if err := g.sess.SellProperty(p); err != nil {
				g.reportPropertyError(err)
				continue
			}
			g.printf("\nSold %s. Purse: %s.\n", p.Name, g.sess.Char.Purse.Format())
			return
		case choice == "2" && p.Owned:
			g.upgradeMenu(p)
		case choice == "3" && p.Owned:
			price, ok := g.promptPrice(p.BasePrice)
			if !ok {
				return
			}
			p.ListForSale(price)
			g.printf("\n%s listed for sale at %d pennies.\n", p.Name, price)
		case choice == "4" && p.Owned:
			price, ok := g.promptPrice(p.BasePrice / 10)
			if !ok {
				return
			}
			p.ListForRent(price)
			g.printf("\n%s listed for rent at %d pennies.\n", p.Name, price)
		case choice == "5" && p.Owned:
			p.Delist()
			g.printf("\n%s delisted.\n", p.Name)
		default:
			g.printf("\nInvalid choice.\n")
		}
	}
}

// promptPrice reads a listing price, reprompting on malformed input.
// The second return is false once input is exhausted.
func (g *Game) promptPrice(suggested int) (int, bool) {
	for {
		choice, ok := g.prompt(fmt.Sprintf("Listing price in pennies (suggested %d): ", suggested))
		if !ok {
			return 0, false
		}
		price, err := strconv.Atoi(choice)
		if err != nil || price < 1 {
			g.printf("\nInvalid price.\n")
			continue
		}
		return price, true
	}
}

func (g *Game) upgradeMenu(p *property.Property) {
	for {
		available := availableUpgrades(p)
		if len(available) == 0 {
			g.printf("\nNo upgrades available for %s.\n", p.Name)
			return
		}

		g.printf("\n--- UPGRADES: %s (%d/%d installed) ---\n", p.Name, len(p.Upgrades), p.UpgradeCapacity)
		for i, u := range available {
			g.printf("%d. %s - %d pennies (happiness +%d)\n", i+1, u.Name, u.Price, u.HappinessBoost)
		}

		choice, ok := g.prompt("\nSelect upgrade to buy (0 to exit): ")
		if !ok || choice == "0" {
			return
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(available) {
			g.printf("\nInvalid choice.\n")
			continue
		}

		u := available[idx-1]
		if err := g.sess.BuyUpgrade(p, u); err != nil {
			g.reportPropertyError(err)
			continue
		}
		g.printf("\nInstalled %s. Happiness: %d/%d.\n",
			u.Name, g.sess.Char.Happiness, g.sess.Char.MaxHappiness)
	}
}

// availableUpgrades lists catalog upgrades not yet installed on p.
func availableUpgrades(p *property.Property) []property.Upgrade {
	var out []property.Upgrade
	for _, u := range p.Catalog {
		installed := false
		for _, have := range p.Upgrades {
			if have.Name == u.Name {
				installed = true
				break
			}
		}
		if !installed {
			out = append(out, u)
		}
	}
	return out
}

func (g *Game) reportPropertyError(err error) {
	switch {
	case errors.Is(err, session.ErrInsufficientFunds):
		g.printf("\nNot enough money. Purse: %s.\n", g.sess.Char.Purse.Format())
	case errors.Is(err, session.ErrAlreadyOwned):
		g.printf("\nYou already own that property.\n")
	case errors.Is(err, session.ErrNotOwned):
		g.printf("\nYou do not own that property.\n")
	default:
		g.printf("\nThat did not work: %v\n", err)
	}
}

func (g *Game) showLeaderboard(ctx context.Context) {
	entries, err := g.board.Top(ctx, 10)
	if err != nil {
		g.printf("\nFailed to load leaderboard: %v\n", err)
		return
	}
	if len(entries) == 0 {
		g.printf("\nLeaderboard is empty. Save a game to appear on it.\n")
		return
	}

	g.printf("\n--- LEADERBOARD ---\n")
	g.printf("%-4s %-15s %-7s %-11s %-18s %s\n", "#", "Name", "Level", "Experience", "Purse", "Weapon")
	for i, e := range entries {
		weapon := e.Weapon
		if weapon == "" {
			weapon = "None"
		}
		g.printf("%-4d %-15s %-7d %-11d %-18s %s\n", i+1, e.Name, e.Level, e.Experience, e.Purse, weapon)
	}
}
