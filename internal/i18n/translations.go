// Package i18n provides the static storefront translation tables.
package i18n

// Language is a supported UI language code
type Language string

const (
	LanguageEN Language = "en"
	LanguageRU Language = "ru"
	LanguageUZ Language = "uz"
)

// DefaultLanguage is used when no valid preference is stored
const DefaultLanguage = LanguageEN

// Parse parses a language code, reporting whether it is supported
func Parse(s string) (Language, bool) {
	switch Language(s) {
	case LanguageEN, LanguageRU, LanguageUZ:
		return Language(s), true
	}
	return DefaultLanguage, false
}

// Languages returns the supported language codes
func Languages() []Language {
	return []Language{LanguageEN, LanguageRU, LanguageUZ}
}

// T looks up a translation, falling back to English, then to the key itself
func T(lang Language, key string) string {
	if table, ok := translations[lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if value, ok := translations[DefaultLanguage][key]; ok {
		return value
	}
	return key
}

// Table returns the full translation table for a language, with English
// filling any gaps
func Table(lang Language) map[string]string {
	table := make(map[string]string, len(translations[DefaultLanguage]))
	for key, value := range translations[DefaultLanguage] {
		table[key] = value
	}
	if lang == DefaultLanguage {
		return table
	}
	for key, value := range translations[lang] {
		table[key] = value
	}
	return table
}

var translations = map[Language]map[string]string{
	LanguageEN: {
		"home":             "Home",
		"shop":             "Shop",
		"addProduct":       "Add Product",
		"ourCollection":    "Our Collection",
		"searchProducts":   "Search products...",
		"allProducts":      "All Products",
		"favorites":        "Favorites",
		"filter":           "Filter",
		"categories":       "Categories",
		"all":              "All",
		"noProducts":       "No products found",
		"addNewProduct":    "Add a new product",
		"backToCollection": "Back to Collection",
		"description":      "Description",
		"quantity":         "Quantity",
		"addToCart":        "Add to Cart",
		"details":          "Details",
		"productID":        "Product ID",
		"category":         "Category",
		"cart":             "Cart",
		"yourCart":         "Your Cart",
		"emptyCart":        "Your cart is empty",
		"total":            "Total",
		"checkout":         "Checkout",
		"clearCart":        "Clear Cart",
		"remove":           "Remove",
		"editProduct":      "Edit Product",
		"deleteProduct":    "Delete Product",
		"save":             "Save",
		"cancel":           "Cancel",
		"price":            "Price",
		"title":            "Title",
		"imageURL":         "Image URL",
		"language":         "Language",
	},
	LanguageRU: {
		"home":             "Главная",
		"shop":             "Магазин",
		"addProduct":       "Добавить товар",
		"ourCollection":    "Наша коллекция",
		"searchProducts":   "Поиск товаров...",
		"allProducts":      "Все товары",
		"favorites":        "Избранное",
		"filter":           "Фильтр",
		"categories":       "Категории",
		"all":              "Все",
		"noProducts":       "Товары не найдены",
		"addNewProduct":    "Добавить новый товар",
		"backToCollection": "Назад к коллекции",
		"description":      "Описание",
		"quantity":         "Количество",
		"addToCart":        "В корзину",
		"details":          "Подробности",
		"productID":        "ID товара",
		"category":         "Категория",
		"cart":             "Корзина",
		"yourCart":         "Ваша корзина",
		"emptyCart":        "Ваша корзина пуста",
		"total":            "Итого",
		"checkout":         "Оформить заказ",
		"clearCart":        "Очистить корзину",
		"remove":           "Удалить",
		"editProduct":      "Редактировать товар",
		"deleteProduct":    "Удалить товар",
		"save":             "Сохранить",
		"cancel":           "Отмена",
		"price":            "Цена",
		"title":            "Название",
		"imageURL":         "Ссылка на изображение",
		"language":         "Язык",
	},
	LanguageUZ: {
		"home":             "Bosh sahifa",
		"shop":             "Do'kon",
		"addProduct":       "Mahsulot qo'shish",
		"ourCollection":    "Bizning kolleksiya",
		"searchProducts":   "Mahsulotlarni qidirish...",
		"allProducts":      "Barcha mahsulotlar",
		"favorites":        "Sevimlilar",
		"filter":           "Filtr",
		"categories":       "Kategoriyalar",
		"all":              "Hammasi",
		"noProducts":       "Mahsulotlar topilmadi",
		"addNewProduct":    "Yangi mahsulot qo'shish",
		"backToCollection": "Kolleksiyaga qaytish",
		"description":      "Tavsif",
		"quantity":         "Miqdor",
		"addToCart":        "Savatga qo'shish",
		"details":          "Tafsilotlar",
		"productID":        "Mahsulot ID",
		"category":         "Kategoriya",
		"cart":             "Savat",
		"yourCart":         "Sizning savatingiz",
		"emptyCart":        "Savatingiz bo'sh",
		"total":            "Jami",
		"checkout":         "Buyurtma berish",
		"clearCart":        "Savatni tozalash",
		"remove":           "O'chirish",
		"editProduct":      "Mahsulotni tahrirlash",
		"deleteProduct":    "Mahsulotni o'chirish",
		"save":             "Saqlash",
		"cancel":           "Bekor qilish",
		"price":            "Narx",
		"title":            "Nomi",
		"imageURL":         "Rasm havolasi",
		"language":         "Til",
	},
}
