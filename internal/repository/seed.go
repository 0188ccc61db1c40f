package repository

import (
	"gorm.io/gorm"

	"optimizer/internal/model"
)

// SeedProducts fills the catalog on first run. An already-seeded table is
// left untouched.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.CreateInBatches(catalogSeed, 50).Error
}

var catalogSeed = []model.Product{
	{ID: "1", Name: "Молоко (Sut)", Category: "🥛 Молочные продукты", Unit: "л"},
	{ID: "2", Name: "Кефир (Kefir)", Category: "🥛 Молочные продукты", Unit: "л"},
	{ID: "3", Name: "Творог (Tvorog / Suzma)", Category: "🥛 Молочные продукты", Unit: "кг"},
	{ID: "4", Name: "Каймак (Qaymoq)", Category: "🥛 Молочные продукты", Unit: "кг"},
	{ID: "5", Name: "Сметана (Smetana / Qaymoqcha)", Category: "🥛 Молочные продукты", Unit: "кг"},
	{ID: "6", Name: "Сыр твёрдый (Qattiq pishloq)", Category: "🥛 Молочные продукты", Unit: "кг"},
	{ID: "7", Name: "Сыр плавленый (Eritilgan pishloq)", Category: "🥛 Молочные продукты", Unit: "кг"},
	{ID: "8", Name: "Сыр моцарелла (Motsarella pishlog‘i)", Category: "🥛 Молочные продукты", Unit: "кг"},
	{ID: "9", Name: "Сыр Ханский (Xon pishlog‘i)", Category: "🥛 Молочные продукты", Unit: "кг"},
	{ID: "10", Name: "Сырок (Shirin pishloqcha)", Category: "🥛 Молочные продукты", Unit: "шт"},
	{ID: "11", Name: "Сливочное масло (Sariyog‘)", Category: "🥛 Молочные продукты", Unit: "кг"},
	{ID: "12", Name: "Маргарин «Шедрое лето» (Margarin)", Category: "🥛 Молочные продукты", Unit: "кг"},
	{ID: "13", Name: "Яйца куриные (Tovuq tuxumi)", Category: "🥚 Яйца и мясо", Unit: "шт"},
	{ID: "14", Name: "Яйца перепелиные (Bedana tuxumi)", Category: "🥚 Яйца и мясо", Unit: "шт"},
	{ID: "15", Name: "Индейка (Kurka go‘shti)", Category: "🥚 Яйца и мясо", Unit: "кг"},
	{ID: "16", Name: "Колбаса варёная (Qaynatilgan kolbasa)", Category: "🥚 Яйца и мясо", Unit: "кг"},
	{ID: "17", Name: "Колбаса копчёная (Dudlangan kolbasa)", Category: "🥚 Яйца и мясо", Unit: "кг"},
	{ID: "18", Name: "Сосиски (Sosiska)", Category: "🥚 Яйца и мясо", Unit: "кг"},
	{ID: "19", Name: "Мука (Un)", Category: "🍞 Хлеб и мучное", Unit: "кг"},
	{ID: "20", Name: "Лаваш (Lavash non)", Category: "🍞 Хлеб и мучное", Unit: "шт"},
	{ID: "21", Name: "Хлеб (Non)", Category: "🍞 Хлеб и мучное", Unit: "шт"},
	{ID: "22", Name: "Тостовый хлеб (Tost noni)", Category: "🍞 Хлеб и мучное", Unit: "шт"},
	{ID: "23", Name: "Манпар (тесто) (Xamir)", Category: "🍞 Хлеб и мучное", Unit: "кг"},
	{ID: "24", Name: "Макароны (Makaron)", Category: "🍞 Хлеб и мучное", Unit: "кг"},
	{ID: "25", Name: "Спагетти (Spagetti)", Category: "🍞 Хлеб и мучное", Unit: "кг"},
	{ID: "26", Name: "Вермишель (Vermishel)", Category: "🍞 Хлеб и мучное", Unit: "кг"},
	{ID: "27", Name: "Фунчоза (Funchuza)", Category: "🍞 Хлеб и мучное", Unit: "кг"},
	{ID: "28", Name: "Манная крупа (Manka yormasi)", Category: "🍞 Хлеб и мучное", Unit: "кг"},
	{ID: "29", Name: "Овсянка (Suli yormasi)", Category: "🍞 Хлеб и мучное", Unit: "кг"},
	{ID: "30", Name: "Рис (Guruch)", Category: "🍚 Крупы и бобовые", Unit: "кг"},
	{ID: "31", Name: "Рис обычный (Oddiy guruch)", Category: "🍚 Крупы и бобовые", Unit: "кг"},
	{ID: "32", Name: "Рис Лазер (Lazer guruch)", Category: "🍚 Крупы и бобовые", Unit: "кг"},
	{ID: "33", Name: "Перловка (Arpa yormasi)", Category: "🍚 Крупы и бобовые", Unit: "кг"},
	{ID: "34", Name: "Нут / горох (No‘xat)", Category: "🍚 Крупы и бобовые", Unit: "кг"},
	{ID: "35", Name: "Горох (консерва) (Konserva no‘xat)", Category: "🍚 Крупы и бобовые", Unit: "шт"},
	{ID: "36", Name: "Соль (Tuz)", Category: "🧂 Специи и приправы", Unit: "кг"},
	{ID: "37", Name: "Корейская соль (Koreys tuzi)", Category: "🧂 Специи и приправы", Unit: "кг"},
	{ID: "38", Name: "Зира (Zira)", Category: "🧂 Специи и приправы", Unit: "г"},
	{ID: "39", Name: "Приправа для лагмана (Lag‘mon ziravori)", Category: "🧂 Специи и приправы", Unit: "г"},
	{ID: "40", Name: "Лавровый лист (Dafna bargi)", Category: "🧂 Специи и приправы", Unit: "шт"},
	{ID: "41", Name: "Роллтон (приправа) (Rollton ziravori)", Category: "🧂 Специи и приправы", Unit: "шт"},
	{ID: "42", Name: "Кунжут (Kunjut)", Category: "🧂 Специи и приправы", Unit: "г"},
	{ID: "43", Name: "Какао (Kakao)", Category: "☕ Напитки и сладкое", Unit: "кг"},
	{ID: "44", Name: "Чёрный чай (Qora choy)", Category: "☕ Напитки и сладкое", Unit: "кг"},
	{ID: "45", Name: "Сахар (Shakar)", Category: "☕ Напитки и сладкое", Unit: "кг"},
	{ID: "46", Name: "Варенье (Murabbo)", Category: "☕ Напитки и сладкое", Unit: "кг"},
	{ID: "47", Name: "Шоколадная паста (Shokolad pastasi)", Category: "☕ Напитки и сладкое", Unit: "шт"},
	{ID: "48", Name: "Миллер (вафли) (Vafli)", Category: "☕ Напитки и сладкое", Unit: "шт"},
	{ID: "49", Name: "Изюм (Mayiz)", Category: "☕ Напитки и сладкое", Unit: "кг"},
	{ID: "50", Name: "Грецкий орех (Yong‘oq)", Category: "☕ Напитки и сладкое", Unit: "кг"},
	{ID: "51", Name: "Майонез (Mayonez)", Category: "🥫 Соусы и добавки", Unit: "кг"},
	{ID: "52", Name: "Соевый соус (Soya sousi)", Category: "🥫 Соусы и добавки", Unit: "л"},
	{ID: "53", Name: "Уксус (Sirka)", Category: "🥫 Соусы и добавки", Unit: "л"},
	{ID: "54", Name: "Томатная паста (Tomat pastasi)", Category: "🥫 Соусы и добавки", Unit: "кг"},
	{ID: "55", Name: "Кетчуп (Ketchup)", Category: "🥫 Соусы и добавки", Unit: "шт"},
	{ID: "56", Name: "Масло растительное (O‘simlik yog‘i)", Category: "🥫 Соусы и добавки", Unit: "л"},
	{ID: "57", Name: "Сода (Soda)", Category: "🥫 Соусы и добавки", Unit: "шт"},
	{ID: "58", Name: "Дрожжи (Xamirturush)", Category: "🥫 Соусы и добавки", Unit: "шт"},
	{ID: "59", Name: "Разрыхлитель (Pishirish kukuni)", Category: "🥫 Соусы и добавки", Unit: "шт"},
	{ID: "60", Name: "Картофель (Kartoshka)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "61", Name: "Морковь красная (Qizil sabzi)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "62", Name: "Морковь жёлтая (Sariq sabzi)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "63", Name: "Капуста зелёная (Yashil karam)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "64", Name: "Капуста красная (Qizil karam)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "65", Name: "Капуста квашеная (Tuzlangan karam)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "66", Name: "Помидоры (Pomidor)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "67", Name: "Огурцы (Bodring)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "68", Name: "Солёные огурцы (Tuzlangan bodring)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "69", Name: "Болгарский перец (Bulgar qalampiri)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "70", Name: "Болгарский перец «Светофор» (Rangli qalampir)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "71", Name: "Лук (Piyoz)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "72", Name: "Сельдерей (Selderey)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "73", Name: "Корейская морковь (Koreyscha sabzi)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "74", Name: "Укроп (Shivit)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "75", Name: "Кинза (Kashnich)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "76", Name: "Свекла красная (Qizil lavlagi)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "77", Name: "Редька белая (Oq turup)", Category: "🥕 Овощи и зелень", Unit: "кг"},
	{ID: "78", Name: "Бананы (Banan)", Category: "🍎 Фрукты", Unit: "кг"},
	{ID: "79", Name: "Яблоки (Olma)", Category: "🍎 Фрукты", Unit: "кг"},
	{ID: "80", Name: "Груша (Nok)", Category: "🍎 Фрукты", Unit: "кг"},
	{ID: "81", Name: "Лимоны (Limon)", Category: "🍎 Фрукты", Unit: "кг"},
}
