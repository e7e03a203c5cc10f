package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/config"
	"github.com/pageza/tarif-defteri/internal/logging"
	"github.com/pageza/tarif-defteri/internal/model"
	"github.com/pageza/tarif-defteri/internal/service"
	"github.com/pageza/tarif-defteri/internal/storage"
)

var seedRecipes = []model.NewRecipe{
	{
		Category:     model.Soups,
		Name:         "Mercimek Çorbası",
		Ingredients:  "1 su bardağı kırmızı mercimek\n1 soğan\n1 havuç\n1 yemek kaşığı tereyağı\ntuz, kimyon",
		Instructions: "Soğan ve havucu tereyağında kavurun. Mercimeği ve 6 su bardağı suyu ekleyip yumuşayana kadar pişirin. Blenderdan geçirip baharatlayın.",
	},
	{
		Category:     model.Soups,
		Name:         "Ezogelin Çorbası",
		Ingredients:  "1 su bardağı kırmızı mercimek\n2 yemek kaşığı bulgur\n1 yemek kaşığı pirinç\n1 yemek kaşığı salça\nnane, pul biber",
		Instructions: "Salçayı yağda kavurun. Mercimek, bulgur ve pirinci ekleyip suyla pişirin. Naneli yağ ile servis edin.",
	},
	{
		Category:     model.Desserts,
		Name:         "Sütlaç",
		Ingredients:  "1 litre süt\n1/2 su bardağı pirinç\n1 su bardağı şeker\n2 yemek kaşığı pirinç unu",
		Instructions: "Pirinci haşlayın, sütü ve şekeri ekleyin. Pirinç ununu sütle açıp ilave edin. Kaselere paylaştırıp fırında üstünü kızartın.",
	},
	{
		Category:     model.MainDishes,
		Name:         "Karnıyarık",
		Ingredients:  "6 patlıcan\n250 gr kıyma\n2 soğan\n2 domates\n3 sivri biber",
		Instructions: "Patlıcanları kızartın. Kıymayı soğan ve domatesle kavurun. Patlıcanları yarıp harcı doldurun, fırında 30 dakika pişirin.",
	},
	{
		Category:     model.Salads,
		Name:         "Çoban Salata",
		Ingredients:  "3 domates\n2 salatalık\n1 soğan\n2 sivri biber\nmaydanoz, zeytinyağı, limon",
		Instructions: "Sebzeleri küçük küpler halinde doğrayın. Zeytinyağı, limon ve tuzla harmanlayın.",
	},
	{
		Category:     model.Appetizers,
		Name:         "Haydari",
		Ingredients:  "2 su bardağı süzme yoğurt\n2 diş sarımsak\ndereotu, nane\nzeytinyağı",
		Instructions: "Yoğurdu ezilmiş sarımsak ve ince kıyılmış otlarla karıştırın. Üzerine zeytinyağı gezdirin.",
	},
}

func main() {
	force := flag.Bool("force", false, "seed even when the collection is not empty")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	slot, closer, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closer.Close()

	store := service.NewRecipeStore(slot, cfg.StorageKey,
		service.WithIDGenerator(service.NewIDGenerator(cfg.IDStrategy)),
		service.WithLogger(logger),
	)
	store.Load(ctx)

	if store.Len() > 0 && !*force {
		logger.Info("Collection already has recipes, skipping seed", zap.Int("count", store.Len()))
		return
	}

	created := 0
	for _, in := range seedRecipes {
		r, err := store.Create(ctx, in)
		if err != nil {
			logger.Error("Failed to seed recipe", zap.String("name", in.Name), zap.Error(err))
			continue
		}
		created++
		logger.Info("Seeded recipe", zap.String("id", r.ID), zap.String("name", r.Name))
	}
	logger.Info("Seeding complete", zap.Int("created", created), zap.Int("total", store.Len()))
}
