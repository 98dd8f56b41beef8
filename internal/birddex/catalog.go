package birddex

const defaultCatalog = `
birds:
  - id: "1"
    name: Ruby-Crowned Kinglet
    ability: Crown Flash
    rarity: common
    habitat: forest
  - id: "2"
    name: Western Blue Jay
    ability: Acorn Hoarder
    rarity: common
    habitat: oak woodland
  - id: "3"
    name: Anna's Hummingbird
    ability: Hover Master
    rarity: common
    habitat: gardens
  - id: "4"
    name: Pacific Wren
    ability: Tiny Songbird
    rarity: common
    habitat: forest
  - id: "5"
    name: California Towhee
    ability: Bush Hopper
    rarity: common
    habitat: urban
  - id: "6"
    name: Steller's Jay
    ability: Forest Guardian
    rarity: rare
    habitat: mountain
  - id: "7"
    name: Rock Pigeon
    ability: Urban Survivor
    rarity: common
    habitat: urban
  - id: "8"
    name: Great Blue Heron
    ability: Patient Hunter
    rarity: rare
    habitat: wetland
  - id: "9"
    name: Black-Crowned Night Heron
    ability: Night Vision
    rarity: rare
    habitat: wetland
  - id: "10"
    name: Peregrine Falcon
    ability: Speed Demon
    rarity: legendary
    habitat: mountain
  - id: "11"
    name: Northern Cardinal
    ability: Brilliant Flash
    rarity: common
    habitat: forest
  - id: "12"
    name: Great Horned Owl
    ability: Silent Stalker
    rarity: rare
    habitat: forest
`
