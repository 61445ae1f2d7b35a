package extraction

// extractionPrompt is sent with every document. It asks for the same shape the
// result schema enforces.
const extractionPrompt = `Analiza este documento o imagen de Inprotar (insumos eléctricos e industriales).
Tu objetivo es extraer TODOS los productos o variantes técnicas que aparezcan.

Para cada producto entrega:
1. name: nombre comercial corto y preciso (modelo o código).
2. brand: la marca impresa; si no aparece o es Inprotar, usa "INPROTAR".
3. description: mini descripción técnica orientada a ingeniería eléctrica, máximo 15 palabras.
4. suggestedUnit: "u" (unidades o piezas), "m" (metros), "kg" (kilos) o "cm" (centímetros).
5. specDetails: el dato clave diferenciador (ej: "32 Amperes", "50 Watts", "2x1.5mm").
6. category: una categoría breve para el producto.

Marca multipleModelsFound en true cuando el material muestre más de un modelo o variante.

Responde SOLAMENTE con un objeto JSON válido, sin markdown ni explicaciones:
{"multipleModelsFound": boolean, "products": [{"name": string, "brand": string, "description": string, "suggestedUnit": "u" | "m" | "kg" | "cm", "specDetails": string, "category": string}]}`

const resultSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["multipleModelsFound", "products"],
  "properties": {
    "multipleModelsFound": {"type": "boolean"},
    "products": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "brand", "description", "suggestedUnit"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "brand": {"type": "string"},
          "description": {"type": "string"},
          "suggestedUnit": {"type": "string", "enum": ["u", "m", "kg", "cm"]},
          "specDetails": {"type": "string"},
          "category": {"type": "string"}
        }
      }
    }
  }
}`
