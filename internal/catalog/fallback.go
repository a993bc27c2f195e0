package catalog

// fallbackCSV is the built-in minimal catalog served when the backing
// source is unavailable. It runs through the same enrichment pipeline as
// real source data, so browsing never hard-fails and never renders empty.
const fallbackCSV = `id,name,destination,country,continent,duration_hours,private,overview,highlights,inclusions,exclusions,categories,rating,review_count,image_1,image_2,image_3,image_4,image_5
fb-tokyo-food,Tokyo Street Food Discovery,Tokyo,Japan,Asia,3,false,"Graze through Shibuya's back-alley izakayas with a local guide.",Izakaya hopping|Depachika tasting,Guide|Tastings,Drinks,Food & Drink|Culture,4.7,182,,,,,
fb-paris-walk,Paris Left Bank Walk,Paris,France,Europe,2.5,false,"A slow wander from the Pantheon to the Seine.",Latin Quarter|Shakespeare and Company,Guide,Museum entry,Walking|History,4.5,96,,,,,
fb-sydney-sail,Sydney Harbour Sail,Sydney,Australia,Oceania,4,false,"Catch the late light on the harbour under sail.",Opera House from the water|Harbour Bridge,Skipper|Light refreshments,Hotel transfer,Cruise|Nature,4.6,121,,,,,
`
