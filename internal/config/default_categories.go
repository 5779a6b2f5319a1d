package config

import "github.com/mriviere/discoverlens/internal/model"

// DefaultCategories returns the twelve-category editorial set used for
// French Google Discover corpora. Used when no category file is configured.
// Declaration order matters: it breaks score ties during classification.
func DefaultCategories() []model.Category {
	return []model.Category{
		{
			Key:   "SANTE_NATURELLE",
			Name:  "Santé Naturelle",
			Emoji: "🏥",
			Keywords: []string{
				"remède", "naturel", "santé", "nutrition", "bien-être",
				"guérir", "soin", "mal", "douleur", "médecin", "science",
			},
		},
		{
			Key:   "SPORT_FITNESS",
			Name:  "Sport & Fitness",
			Emoji: "💪",
			Keywords: []string{
				"sport", "fitness", "exercice", "musculation", "entraînement",
				"cardio", "perdre", "poids", "kg",
			},
		},
		{
			Key:   "BEAUTE_ANTIAGE",
			Name:  "Beauté Anti-âge",
			Emoji: "🌸",
			Keywords: []string{
				"beauté", "anti-âge", "peau", "visage", "rides",
				"cosmétique", "crème", "sérum",
			},
		},
		{
			Key:   "SOCIETE_TENDANCES",
			Name:  "Société & Tendances",
			Emoji: "🏛️",
			Keywords: []string{
				"société", "tendance", "comportement", "social", "évolution",
				"nouveau", "révolutionne", "monde",
			},
		},
		{
			Key:   "VOYAGES_DECOUVERTES",
			Name:  "Voyages & Découvertes",
			Emoji: "🗺️",
			Keywords: []string{
				"voyage", "destination", "tourisme", "découverte", "région",
				"plage", "vacances", "ville",
			},
		},
		{
			Key:   "LIFESTYLE_BIENETRE",
			Name:  "Lifestyle & Bien-être",
			Emoji: "🌿",
			Keywords: []string{
				"lifestyle", "routine", "habitude", "bien-être", "vie",
				"quotidien", "matin", "changé",
			},
		},
		{
			Key:   "CULTURE_PATRIMOINE",
			Name:  "Culture & Patrimoine",
			Emoji: "🎨",
			Keywords: []string{
				"culture", "art", "patrimoine", "exposition", "spectacle",
				"musée", "artiste",
			},
		},
		{
			Key:   "PSYCHOLOGIE_MENTAL",
			Name:  "Psychologie & Mental",
			Emoji: "🧠",
			Keywords: []string{
				"psychologie", "mental", "émotion", "comportement", "stress",
				"anxiété", "psychologue",
			},
		},
		{
			Key:   "SENIOR_VIEILLISSEMENT",
			Name:  "Senior & Vieillissement",
			Emoji: "👴",
			Keywords: []string{
				"senior", "retraite", "âge", "vieillissement", "60+", "pension",
			},
		},
		{
			Key:   "AUTOMOBILE_MOBILITE",
			Name:  "Automobile & Mobilité",
			Emoji: "🚗",
			Keywords: []string{
				"voiture", "auto", "conduite", "véhicule", "mobilité", "électrique",
			},
		},
		{
			Key:   "FINANCE_INVESTISSEMENT",
			Name:  "Finance & Investissement",
			Emoji: "💰",
			Keywords: []string{
				"finance", "investissement", "épargne", "argent", "crypto",
				"bitcoin", "investir",
			},
		},
		{
			Key:   "RECETTES_CUISINE",
			Name:  "Recettes & Cuisine",
			Emoji: "🍽️",
			Keywords: []string{
				"recette", "cuisine", "plat", "culinaire", "food",
				"ingrédient", "repas", "gratin", "minutes",
			},
		},
	}
}
