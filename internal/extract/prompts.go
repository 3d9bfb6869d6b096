package extract

// The prompts instruct the model in Romanian, matching the documents it will
// see, and demand a bare JSON object with a fixed field list.

const jsonOnlyRule = `
IMPORTANT: Răspunde DOAR cu un obiect JSON valid, fără text suplimentar, fără markdown, fără explicații.
Toate proprietățile și valorile string trebuie să fie între ghilimele duble.
`

const documentPrompt = `Analizează acest document contabil românesc și extrage următoarele informații:

1. Categoria (Transport, Servicii, Materiale, etc.)
2. Furnizorul/Emitentul
3. Suma totală (cu valuta)
4. Clientul/Beneficiarul
5. Data documentului
6. Numărul facturii (dacă există)
7. CUI-ul (dacă există)
8. Descrierea serviciilor/produselor

De asemenea, oferă:
- 3-5 insights utile despre acest document
- 2-3 recomandări pentru procesare sau verificare
- Un scor de încredere pentru extragerea datelor (0-100%)
` + jsonOnlyRule + `
Structura JSON exactă:
{
  "category": "valoare_string",
  "supplier": "valoare_string",
  "amount": "valoare_string",
  "client": "valoare_string",
  "documentDate": "valoare_string",
  "invoiceNumber": "valoare_string",
  "cui": "valoare_string",
  "description": "valoare_string",
  "insights": [],
  "recommendations": [],
  "confidence": 85
}
`

const contractPrompt = `Analizează acest contract românesc și extrage următoarele informații:

INFORMAȚII DE BAZĂ:
1. Titlul contractului
2. Numele clientului/beneficiarului
3. Numele furnizorului/prestatorului
4. Tipul contractului (servicii, furnizare, mentenanță, consultanță, altele)
5. Data de început
6. Data de sfârșit
7. Valoarea contractului (cu valuta)
8. Termenii de plată
9. Descrierea obiectului contractului

CLAUZE ȘI TERMENI:
10. Termenii și condițiile principale (listă)
11. Livrabilele/serviciile (listă)
12. Părțile contractante (listă)
13. Obligațiile principale (listă)
14. Penalitățile și sancțiunile (listă)
15. Clauzele de reziliere (listă)

ANALIZĂ DE RISC:
16. Nivelul de risc (low/medium/high)
17. Factorii de risc identificați (listă)
18. Recomandări pentru gestionarea riscurilor (listă)

DATE CHEIE:
19. Datele importante din contract (listă)

INSIGHTS ȘI AVERTISMENTE:
20. Observații importante despre contract (listă)
21. Avertismente sau aspecte de atenție (listă)
22. Scor de încredere pentru extragerea datelor (0-100%)
` + jsonOnlyRule + `
Structura JSON exactă:
{
  "title": "valoare_string",
  "clientName": "valoare_string",
  "supplierName": "valoare_string",
  "contractType": "valoare_string",
  "startDate": "valoare_string",
  "endDate": "valoare_string",
  "value": "valoare_string",
  "currency": "valoare_string",
  "paymentTerms": "valoare_string",
  "description": "valoare_string",
  "terms": [],
  "deliverables": [],
  "parties": [],
  "obligations": [],
  "penalties": [],
  "terminationClauses": [],
  "riskLevel": "medium",
  "riskFactors": [],
  "recommendations": [],
  "keyDates": [],
  "insights": [],
  "warnings": [],
  "confidence": 85
}
`

const bankStatementPrompt = `Analizează acest extras de cont bancar românesc și extrage următoarele informații:

INFORMAȚII GENERALE:
1. Numele băncii
2. Numărul contului (IBAN sau număr cont)
3. Perioada extrasului (data început și sfârșit)
4. Soldul de deschidere
5. Soldul de închidere

TRANZACȚII:
Pentru fiecare tranzacție extrage:
- Data tranzacției
- Descrierea/detaliile tranzacției
- Suma (cu semnul + pentru încasări, - pentru plăți)
- Soldul după tranzacție
- Referința/numărul tranzacției
- Tipul (debit/credit)
- Categoria (transfer, plată card, încasare, comision, etc.)
- Contrapartida (numele beneficiarului/plătitorului)
- IBAN contrapartidă (dacă există)

ANALIZĂ:
- 3-5 insights despre activitatea contului
- 2-3 recomandări pentru gestionarea financiară
- Scor de încredere pentru extragerea datelor (0-100%)
` + jsonOnlyRule + `
Structura JSON exactă:
{
  "bankName": "valoare_string",
  "accountNumber": "valoare_string",
  "statementPeriod": {
    "startDate": "valoare_string",
    "endDate": "valoare_string"
  },
  "openingBalance": "valoare_string",
  "closingBalance": "valoare_string",
  "transactions": [
    {
      "date": "valoare_string",
      "description": "valoare_string",
      "amount": "valoare_string",
      "balance": "valoare_string",
      "reference": "valoare_string",
      "type": "debit",
      "category": "valoare_string",
      "counterparty": "valoare_string",
      "iban": "valoare_string"
    }
  ],
  "insights": [],
  "recommendations": [],
  "confidence": 85
}
`
